package terminal

import (
	"fmt"
	"time"

	"github.com/nsf/termbox-go"
)

// Live redraws frames produced by next at the given interval, binding the
// elapsed time in seconds, until the user presses q, Esc or Ctrl-C.
func Live(interval time.Duration, next func(elapsed float64) (Frame, error)) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer termbox.Close()
	termbox.SetOutputMode(termbox.OutputRGB)

	events := make(chan termbox.Event)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	start := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	draw := func() error {
		frame, err := next(time.Since(start).Seconds())
		if err != nil {
			return err
		}
		if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
			return fmt.Errorf("failed to clear terminal: %w", err)
		}
		for y, row := range frame.Rows() {
			for x, cell := range row {
				attr := termbox.ColorDefault
				if cell.Color != nil {
					attr = termbox.RGBToAttribute(cell.Color.R, cell.Color.G, cell.Color.B)
				}
				termbox.SetCell(x, y, cell.Rune, attr, termbox.ColorDefault)
			}
		}
		return termbox.Flush()
	}

	if err := draw(); err != nil {
		return err
	}

	for {
		select {
		case ev := <-events:
			switch ev.Type {
			case termbox.EventKey:
				if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q' {
					return nil
				}
			case termbox.EventError:
				return fmt.Errorf("terminal event error: %w", ev.Err)
			}
		case <-ticker.C:
			if err := draw(); err != nil {
				return err
			}
		}
	}
}
