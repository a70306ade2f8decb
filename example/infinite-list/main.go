// Command infinite-list shows an endless message list: scrolling to the
// bottom loads another page of rows through an infinite scroll controller.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/pelletier/go-toml/v2"

	"github.com/ayn2op/infinitescroll"
)

type config struct {
	PageSize       int    `toml:"page_size"`
	MaxPages       int    `toml:"max_pages"`
	TriggerOffset  int    `toml:"trigger_offset"`
	MarginLeading  int    `toml:"margin_leading"`
	MarginTrailing int    `toml:"margin_trailing"`
	SpinnerLabel   string `toml:"spinner_label"`
	LogFile        string `toml:"log_file"`
}

func loadConfig(path string) (config, error) {
	cfg := config{
		PageSize:       30,
		MaxPages:       10,
		MarginLeading:  1,
		MarginTrailing: 1,
		SpinnerLabel:   "loading more",
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// messageRow is a single-line list row.
type messageRow struct {
	text  string
	style tcell.Style

	x, y, width, height int
}

func (r *messageRow) Height(width int) int { return 1 }

func (r *messageRow) GetRect() (int, int, int, int) { return r.x, r.y, r.width, r.height }

func (r *messageRow) SetRect(x, y, width, height int) {
	r.x, r.y, r.width, r.height = x, y, width, height
}

func (r *messageRow) InputHandler(*tcell.EventKey) bool { return false }

func (r *messageRow) HasFocus() bool { return false }

func (r *messageRow) Focus() {}

func (r *messageRow) Blur() {}

func (r *messageRow) MouseHandler(infinitescroll.MouseAction, *tcell.EventMouse) bool {
	return false
}

func (r *messageRow) Draw(screen tcell.Screen) {
	text := infinitescroll.TruncateString(r.text, r.width)
	infinitescroll.PutString(screen, text, r.x, r.y, r.style)
}

func main() {
	cfg, err := loadConfig("infinite-list.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		infinitescroll.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var rows []*messageRow
	appendPage := func(page int) {
		style := tcell.StyleDefault.Foreground(infinitescroll.Styles.PrimaryTextColor)
		for i := 0; i < cfg.PageSize; i++ {
			rows = append(rows, &messageRow{
				text:  fmt.Sprintf("message %4d · page %d", len(rows)+1, page),
				style: style,
			})
		}
	}
	appendPage(1)
	pages := 1

	list := infinitescroll.NewListView()
	list.SetBuilder(func(index int) infinitescroll.Row {
		if index < 0 || index >= len(rows) {
			return nil
		}
		return rows[index]
	})
	list.SetBorder(true)
	list.SetTitle(" infinite list ")

	app := infinitescroll.NewApp().
		SetRefreshInterval(80 * time.Millisecond)
	list.SetAnimator(infinitescroll.NewAnimator(app.Post))

	spinner := infinitescroll.NewSpinner().SetLabel(cfg.SpinnerLabel)

	controller := infinitescroll.NewController(list, infinitescroll.Vertical).
		SetScheduleFunc(app.After).
		SetTriggerOffset(cfg.TriggerOffset).
		SetIndicatorMargins(cfg.MarginLeading, cfg.MarginTrailing).
		SetIndicator(spinner).
		SetShouldBeginFunc(func() bool {
			return pages < cfg.MaxPages
		}).
		SetBeginFunc(func(_ infinitescroll.ScrollableContainer, done func()) {
			go func() {
				// Simulated fetch latency.
				time.Sleep(time.Duration(400+rand.Intn(600)) * time.Millisecond)
				app.QueueUpdate(func() {
					pages++
					appendPage(pages)
					list.Remeasure()
					done()
				})
			}()
		}).
		SetFinishFunc(func(infinitescroll.ScrollableContainer) {
			list.SetTitle(fmt.Sprintf(" infinite list · %d pages ", pages))
		})
	defer controller.Detach()

	if err := app.SetRoot(list).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
