package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/godxf/pkg/analysis"
	"github.com/philipparndt/godxf/pkg/geometry"
	"github.com/philipparndt/godxf/pkg/triangle"
	"github.com/philipparndt/godxf/pkg/viewer"
	"github.com/philipparndt/godxf/pkg/watcher"
)

type App struct {
	window   fyne.Window
	tree     *triangle.Tree
	renderer *viewer.SceneRenderer
	watcher  *watcher.SceneWatcher
	scene    string

	selectionLabel *widget.Label
	infoLabel      *widget.Label
	lenBEntry      *widget.Entry
	lenCEntry      *widget.Entry
}

func main() {
	a := app.New()
	w := a.NewWindow("GoDXF - Triangle Scene Editor")

	appInstance := &App{
		window: w,
	}

	if len(os.Args) > 1 {
		appInstance.loadScene(os.Args[1])
	} else {
		appInstance.newScene()
	}
	appInstance.setupMainUI()

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()

	if appInstance.watcher != nil {
		appInstance.watcher.Close()
	}
}

// newScene starts an unsaved scene with the default root triangle
func (a *App) newScene() {
	tree, err := triangle.NewTree([3]float64{100, 100, 100},
		geometry.NewVector2(0, 0), triangle.DefaultOrientationDeg)
	if err != nil {
		panic(err) // default root lengths are always valid
	}
	a.tree = tree
	a.scene = ""
}

// loadScene reads a scene file and starts watching it for changes
func (a *App) loadScene(filename string) {
	tree, err := triangle.LoadSceneFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	a.tree = tree
	a.scene = filename
	a.watchScene(filename)
}

// watchScene reloads the scene when the file changes on disk
func (a *App) watchScene(filename string) {
	sw, err := watcher.New(filename, 200*time.Millisecond, func(path string) {
		tree, err := triangle.LoadSceneFile(path)
		if err != nil {
			return // partial write; the next event will retry
		}
		fyne.Do(func() {
			a.tree = tree
			if a.renderer == nil {
				return
			}
			a.renderer.SetTree(tree)
			a.renderer.FitToView()
			a.updateInfo()
		})
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file watching disabled: %v\n", err)
		return
	}
	sw.Start()
	a.watcher = sw
}

func (a *App) setupMainUI() {
	a.selectionLabel = widget.NewLabel("Selection: none")
	a.infoLabel = widget.NewLabel("")

	a.lenBEntry = widget.NewEntry()
	a.lenBEntry.SetText("80")
	a.lenCEntry = widget.NewEntry()
	a.lenCEntry.SetText("80")

	a.renderer = viewer.NewSceneRenderer(a.tree)
	a.renderer.SetOnEdgeSelect(func(triangleID int, edge geometry.Edge) {
		a.selectionLabel.SetText(fmt.Sprintf("Selection: triangle %d edge %s", triangleID, edge))
	})

	addButton := widget.NewButton("Add Triangle", func() {
		a.addTriangle()
	})
	updateButton := widget.NewButton("Update Lengths", func() {
		a.updateTriangle()
	})
	removeButton := widget.NewButton("Remove Triangle", func() {
		a.removeTriangle()
	})
	fitButton := widget.NewButton("Fit View", func() {
		a.renderer.FitToView()
	})
	saveButton := widget.NewButton("Save Scene", func() {
		a.saveScene()
	})
	resetButton := widget.NewButton("Reset", func() {
		a.newScene()
		a.renderer.SetTree(a.tree)
		a.renderer.FitToView()
		a.updateInfo()
	})

	sidebar := container.NewVBox(
		widget.NewLabel("Edge Lengths"),
		container.NewGridWithColumns(2,
			widget.NewLabel("B:"), a.lenBEntry,
			widget.NewLabel("C:"), a.lenCEntry,
		),
		a.selectionLabel,
		addButton,
		updateButton,
		removeButton,
		widget.NewSeparator(),
		fitButton,
		saveButton,
		resetButton,
		widget.NewSeparator(),
		a.infoLabel,
	)

	content := container.NewBorder(nil, nil, nil, sidebar, a.renderer)
	a.window.SetContent(content)

	a.renderer.FitToView()
	a.updateInfo()
}

// entryLengths reads the B and C length entries
func (a *App) entryLengths() (b, c float64, err error) {
	b, err = strconv.ParseFloat(a.lenBEntry.Text, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid length B: %q", a.lenBEntry.Text)
	}
	c, err = strconv.ParseFloat(a.lenCEntry.Text, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid length C: %q", a.lenCEntry.Text)
	}
	return b, c, nil
}

// addTriangle attaches a triangle to the selected edge. Edge A is
// inherited from the parent edge.
func (a *App) addTriangle() {
	parentID, edge, ok := a.renderer.Selection()
	if !ok {
		dialog.ShowInformation("No Selection", "Tap an edge to select it first", a.window)
		return
	}

	b, c, err := a.entryLengths()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	if _, err := a.tree.CreateAttached(parentID, edge, b, c); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.renderer.ClearSelection()
	a.renderer.FitToView()
	a.updateInfo()
}

// updateTriangle changes the selected triangle's B and C lengths and
// propagates the new geometry through its descendants.
func (a *App) updateTriangle() {
	id, _, ok := a.renderer.Selection()
	if !ok {
		dialog.ShowInformation("No Selection", "Tap an edge of the triangle to update", a.window)
		return
	}

	b, c, err := a.entryLengths()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	t, found := a.tree.Get(id)
	if !found {
		return
	}
	lengths := t.Lengths()
	lengths[1] = b
	lengths[2] = c

	if err := a.tree.UpdateAndPropagate(id, lengths); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.renderer.FitToView()
	a.updateInfo()
}

// removeTriangle removes the selected triangle if it is a childless
// non-root leaf.
func (a *App) removeTriangle() {
	id, _, ok := a.renderer.Selection()
	if !ok {
		dialog.ShowInformation("No Selection", "Tap an edge of the triangle to remove", a.window)
		return
	}

	if err := a.tree.Remove(id); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.renderer.ClearSelection()
	a.renderer.FitToView()
	a.updateInfo()
}

// saveScene writes the scene, asking for a path the first time
func (a *App) saveScene() {
	if a.scene != "" {
		if err := triangle.SaveSceneFile(a.scene, a.tree); err != nil {
			dialog.ShowError(err, a.window)
		}
		return
	}

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := triangle.SaveScene(writer, a.tree); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.scene = writer.URI().Path()
		a.watchScene(a.scene)
	}, a.window)
}

// updateInfo refreshes the analysis summary in the sidebar
func (a *App) updateInfo() {
	result := analysis.AnalyzeTree(a.tree)
	a.infoLabel.SetText(fmt.Sprintf(
		"Triangles: %d\nEdges: %d\nDepth: %d\nTotal Area: %.2f\nWidth: %.2f\nHeight: %.2f",
		result.TriangleCount,
		result.EdgeCount,
		result.MaxDepth,
		result.TotalArea,
		result.Dimensions.X,
		result.Dimensions.Y,
	))
}
