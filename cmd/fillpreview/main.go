package main

import (
	"fmt"
	"os"
	"strings"

	"git.patyhank.net/falloutBot/guilib/gui"
	"git.patyhank.net/falloutBot/guilib/screen"
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/sandertv/gophertunnel/minecraft/text"
	log "github.com/sirupsen/logrus"
)

type previewOptions struct {
	Rows    int      `short:"r" default:"3" help:"Number of rows of the grid."`
	Palette []string `short:"p" default:"black,white" help:"Glass pane colours to alternate between."`
	Keep    []int    `short:"k" help:"Slots holding an item before filling."`
	Live    bool     `short:"l" help:"Place items the way an open menu is refreshed."`
	Verbose bool     `short:"v" help:"Log every placed slot."`

	Region string `arg:"" enum:"top,bottom,border,between,fill" help:"Region to fill: top, bottom, border, between or fill."`
	Points []int  `arg:"" optional:"" help:"Corners for between as row col row col."`
}

var cellStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
}

var keptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func main() {
	var opts previewOptions
	parser := kong.Must(&opts, kong.Description("Preview how a menu region is filled."))
	_, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)
	if opts.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if opts.Rows < 1 || opts.Rows > 6 {
		parser.Fatalf("rows must be between 1 and 6, got %d", opts.Rows)
	}
	palette, err := paneItems(opts.Palette)
	parser.FatalIfErrorf(err)

	g := screen.NewGeneric(opts.Rows)
	kept := gui.NewItem(item.NewStack(block.Barrier{}, 1))
	for _, slot := range opts.Keep {
		parser.FatalIfErrorf(g.SetSlot(slot, kept))
	}

	err = fillRegion(fillerFor(g, opts.Live), opts.Region, opts.Points, palette)
	parser.FatalIfErrorf(err)

	for slot, it := range g.Slots {
		if it != nil && it != kept {
			log.Debugf("slot %d: %s", slot, text.ANSI(it.Stack().CustomName()))
		}
	}
	fmt.Print(render(g, palette, kept))
	if opts.Live {
		fmt.Printf("%d slots refreshed\n", g.Updates)
	}
}

func fillerFor(g gui.Grid, live bool) gui.Filler {
	if live {
		return gui.Updating(g)
	}
	return gui.Setting(g)
}

func fillRegion(f gui.Filler, region string, points []int, palette []*gui.Item) error {
	switch region {
	case "top":
		f.FillTop(palette...)
	case "bottom":
		f.FillBottom(palette...)
	case "border":
		f.FillBorder(palette...)
	case "between":
		if len(points) != 4 {
			return fmt.Errorf("between needs 4 points, got %d", len(points))
		}
		f.FillBetweenPoints(points[0], points[1], points[2], points[3], palette...)
	case "fill":
		return f.Fill(palette...)
	default:
		return fmt.Errorf("unknown region %q", region)
	}
	return nil
}

// paneItems returns a stained glass pane item for every colour name.
func paneItems(names []string) ([]*gui.Item, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	colours := map[string]item.Colour{}
	for _, c := range item.Colours() {
		colours[c.String()] = c
	}
	items := make([]*gui.Item, len(names))
	for i, name := range names {
		c, ok := colours[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown colour %q", name)
		}
		stack := item.NewStack(block.StainedGlassPane{Colour: c}, 1).
			WithCustomName(text.Colourf("<yellow>%s pane</yellow>", name))
		items[i] = gui.NewItem(stack)
	}
	return items, nil
}

func render(g *screen.Generic, palette []*gui.Item, kept *gui.Item) string {
	var b strings.Builder
	for row := 1; row <= g.Height; row++ {
		for col, it := range g.Row(row) {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell(it, palette, kept))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cell(it *gui.Item, palette []*gui.Item, kept *gui.Item) string {
	switch {
	case it == nil:
		return "."
	case it == kept:
		return keptStyle.Render("#")
	}
	for i, p := range palette {
		if p == it {
			return cellStyles[i%len(cellStyles)].Render(string(rune('A' + i%26)))
		}
	}
	return "?"
}
