package main

import (
	"addressbook/internal/config"
	"addressbook/pkg/addressbook"
	"addressbook/pkg/domain"
	"addressbook/pkg/logger"
	"addressbook/pkg/serrors"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// demoCommand constructs the 'demo' subcommand, which builds a small book,
// edits it and prints it after each step.
func demoCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Runs a scripted walkthrough of the address book",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = logger.WithFields(ctx, zap.String("command", "demo"))

			if err := runDemo(ctx, cmd.OutOrStdout(), cfg.Demo.Verbose); err != nil {
				logger.Error(ctx, "demo failed", zap.Error(err), zap.Any("kind", serrors.KindOf(err)))

				return err
			}

			return nil
		},
	}
}

// newContact builds a record for name holding phones.
func newContact(name string, phones ...string) (*domain.Record, error) {
	r, err := domain.NewRecord(name)
	if err != nil {
		return nil, serrors.Propagate(err, "could not create contact %q", name)
	}
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			return nil, serrors.Propagate(err, "could not add phone to %q", name)
		}
	}

	return r, nil
}

// editContactPhone replaces oldValue with newValue on the contact called name.
// A missing contact or phone is an ErrNotFound error.
func editContactPhone(book *addressbook.AddressBook, name, oldValue, newValue string) (*domain.Record, error) {
	r, ok := book.Find(name)
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "contact %q not found", name)
	}

	edited, err := r.EditPhone(oldValue, newValue)
	if err != nil {
		return nil, serrors.Propagate(err, "could not edit phone of %q", name)
	}
	if !edited {
		return nil, serrors.With(serrors.ErrNotFound, "phone %q of %q not found", oldValue, name)
	}

	return r, nil
}

func printBook(w io.Writer, title string, book *addressbook.AddressBook) {
	fmt.Fprintln(w, title)
	fmt.Fprint(w, book)
}

// runDemo adds John and Jane, edits one of John's phones, looks another one up
// and deletes Jane, writing the book to w along the way.
func runDemo(ctx context.Context, w io.Writer, verbose bool) error {
	var opts []addressbook.Option
	if verbose {
		opts = append(opts,
			addressbook.WithLogger(logger.Get(ctx)),
			addressbook.WithLogLevel(zapcore.InfoLevel))
	}
	book := addressbook.New(opts...)

	john, err := newContact("John", "1234567890", "5555555555")
	if err != nil {
		return err
	}
	book.AddRecord(john)

	jane, err := newContact("Jane", "9876543210")
	if err != nil {
		return err
	}
	book.AddRecord(jane)

	printBook(w, "All contacts:", book)

	john, err = editContactPhone(book, "John", "1234567890", "1112223333")
	if err != nil {
		return err
	}
	logger.Debug(ctx, "edited phone", zap.String("name", "John"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "After editing John's phone:")
	fmt.Fprintln(w, john)

	phone, ok := john.FindPhone("5555555555")
	if !ok {
		return serrors.With(serrors.ErrNotFound, "phone %q not found", "5555555555")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Found phone for John: %s\n", phone)

	if !book.Delete("Jane") {
		logger.Warn(ctx, "contact already absent", zap.String("name", "Jane"))
	}

	fmt.Fprintln(w)
	printBook(w, "All contacts after deleting Jane:", book)

	logger.Info(ctx, "demo finished", zap.Int("contacts", book.Len()))

	return nil
}
