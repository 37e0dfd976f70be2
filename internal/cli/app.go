// internal/cli/app.go
package cli

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/javajoker/shelflife/internal/expiry"
	"github.com/javajoker/shelflife/internal/services"
)

// NewApp builds the shelfctl command tree. clock provides the default
// reference date when --ref is not given.
func NewApp(out io.Writer, clock expiry.Clock) *cli.App {
	refFlag := &cli.StringFlag{
		Name:  "ref",
		Usage: "reference date (YYYY-MM-DD), defaults to today",
	}

	return &cli.App{
		Name:      "shelfctl",
		Usage:     "inspect product expiry status from the terminal",
		Writer:    out,
		ErrWriter: out,
		Commands: []*cli.Command{
			{
				Name:      "classify",
				Usage:     "show days left and tier for one or more expiry dates",
				ArgsUsage: "DATE [DATE...]",
				Flags:     []cli.Flag{refFlag},
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return cli.Exit("at least one date is required", 2)
					}
					ref, err := referenceDate(c, clock)
					if err != nil {
						return err
					}
					return classify(out, c.Args().Slice(), ref, clock)
				},
			},
			{
				Name:      "format",
				Usage:     "convert between YYYY-MM-DD and \"Dec 25, 2024\"",
				ArgsUsage: "DATE",
				Action: func(c *cli.Context) error {
					text := strings.Join(c.Args().Slice(), " ")
					if text == "" {
						return cli.Exit("a date is required", 2)
					}
					converted, err := convert(text)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Fprintln(out, converted)
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "render the sample product list",
				Flags: []cli.Flag{
					refFlag,
					&cli.StringFlag{Name: "user", Value: "User", Usage: "name shown in the list title"},
					&cli.IntFlag{Name: "extra", Usage: "number of random sample products to append"},
					&cli.Int64Flag{Name: "seed", Value: 1, Usage: "random seed for --extra"},
				},
				Action: func(c *cli.Context) error {
					ref, err := referenceDate(c, clock)
					if err != nil {
						return err
					}
					return list(out, c.String("user"), c.Int("extra"), c.Int64("seed"), ref, clock)
				},
			},
		},
	}
}

func referenceDate(c *cli.Context, clock expiry.Clock) (expiry.FixedClock, error) {
	if c.String("ref") == "" {
		return expiry.FixedClock{At: clock.Now()}, nil
	}
	ref, err := expiry.ParseStorage(c.String("ref"))
	if err != nil {
		return expiry.FixedClock{}, cli.Exit(err.Error(), 2)
	}
	return expiry.FixedClock{At: ref}, nil
}

func classify(out io.Writer, dates []string, ref expiry.FixedClock, clock expiry.Clock) error {
	t := newTable(out)
	t.AppendHeader(table.Row{"Input", "Expires", "Days", "Tier", "Status"})

	for _, text := range dates {
		res := expiry.ParseStorageDate(text, clock)
		if res.Fallback {
			logrus.WithField("input", text).WithError(res.Err).Warn("Unparsable date, using today")
		}
		status := expiry.Classify(res.Date, ref.Now())
		t.AppendRow(table.Row{text, expiry.FormatDisplay(res.Date), status.DaysLeft, status.Tier, services.DaysLeftLabel(status)})
	}

	t.SetCaption("reference %s", expiry.FormatStorage(ref.Now()))
	t.Render()
	return nil
}

func convert(text string) (string, error) {
	if display, err := expiry.StorageToDisplay(text); err == nil {
		return display, nil
	}
	storage, err := expiry.DisplayToStorage(text)
	if err != nil {
		return "", errors.Errorf("%q is neither YYYY-MM-DD nor a display date", text)
	}
	return storage, nil
}

func list(out io.Writer, user string, extra int, seed int64, ref expiry.FixedClock, clock expiry.Clock) error {
	store := services.NewProductStore(nil, clock, logrus.StandardLogger())
	catalog := services.NewCatalog(store, services.DefaultSeedProducts, services.DefaultSamplePool, rand.New(rand.NewSource(seed)))
	if err := catalog.Reset(); err != nil {
		return err
	}
	for i := 0; i < extra; i++ {
		if _, _, err := catalog.AddRandom(); err != nil {
			return err
		}
	}

	view := services.RenderList(store.List(), user, ref.Now())

	t := newTable(out)
	t.SetTitle("%s", view.Title)
	t.AppendHeader(table.Row{"#", "", "Product", "Expires", "Days left", "Status"})
	for _, row := range view.Rows {
		t.AppendRow(table.Row{row.Index, row.Icon, row.Name, row.DisplayDate, row.DaysLabel, row.StatusText})
	}
	t.SetCaption("%s", view.CountText)
	t.Render()
	return nil
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	return t
}
