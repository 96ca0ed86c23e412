// Command wizard is a terminal front end for the entry + room booking flow.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"booking-wizard/client"
	"booking-wizard/config"
	"booking-wizard/wizard"
)

func main() {
	_ = godotenv.Load()

	baseURL := config.EnvOrDefault("WIZARD_API_URL", "http://localhost:4000")
	api := client.New(baseURL, 15*time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, wizard.New(api), os.Stdin, os.Stdout)
	switch {
	case err == nil, errors.Is(err, io.EOF):
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stdout)
	default:
		fmt.Fprintln(os.Stderr, "wizard:", err)
		os.Exit(1)
	}
}

type line struct {
	text string
	err  error
}

// readLines feeds in to the returned channel until EOF or done is closed.
// The final value carries io.EOF or the scanner error.
func readLines(in io.Reader, done <-chan struct{}) <-chan line {
	lines := make(chan line)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- line{text: sc.Text()}:
			case <-done:
				return
			}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		select {
		case lines <- line{err: err}:
		case <-done:
		}
	}()
	return lines
}

// run drives the wizard from line-based input. It returns ctx.Err() once ctx
// is cancelled, even while waiting on a prompt.
func run(ctx context.Context, w *wizard.Wizard, in io.Reader, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	ask := func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return "", io.EOF
			}
			return l.text, l.err
		}
	}

	fmt.Fprintln(out, "Step 1 of 2 - Submit an Entry")
	for w.State().Step == wizard.CollectingEntry {
		if err := ctx.Err(); err != nil {
			return err
		}
		name, err := ask("Name: ")
		if err != nil {
			return err
		}
		email, err := ask("Email: ")
		if err != nil {
			return err
		}
		if err := w.SubmitEntry(ctx, name, email); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if st := w.State(); st.EntryScreen.Status == wizard.Failed {
			fmt.Fprintln(out, "Error:", st.EntryScreen.Message)
		}
	}

	bc := w.State().Context
	fmt.Fprintf(out, "\nStep 2 of 2 - Room Selection\nName:  %s\nEmail: %s\n", bc.Entry.TextValue, bc.Entry.Email)

	for w.State().BookingScreen.Status != wizard.Success {
		if err := ctx.Err(); err != nil {
			return err
		}
		room, err := ask("Room number: ")
		if err != nil {
			return err
		}
		guests, err := ask("Number of guests: ")
		if err != nil {
			return err
		}
		if err := w.SubmitBooking(ctx, room, guests); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if st := w.State(); st.BookingScreen.Status == wizard.Failed {
			fmt.Fprintln(out, "Error:", st.BookingScreen.Message)
		}
	}

	st := w.State()
	fmt.Fprintln(out, "\nBooking confirmed!")
	fmt.Fprintf(out, "  Name:      %s\n", st.Context.Entry.TextValue)
	fmt.Fprintf(out, "  Email:     %s\n", st.Context.Entry.Email)
	fmt.Fprintf(out, "  Room:      %s\n", strings.TrimSpace(st.Booking.RoomNumber))
	fmt.Fprintf(out, "  Guests:    %d\n", st.Booking.NumGuests)
	fmt.Fprintf(out, "  Booked at: %s\n", st.Booking.CreatedAt.Local().Format(time.RFC1123))
	return nil
}
