package main

import (
	"errors"
	"fmt"
	"io"

	"libraryoop/internal/book"
	"libraryoop/internal/catalog"
	"libraryoop/internal/lending"
	"libraryoop/internal/notification"
	"libraryoop/internal/render"
	"libraryoop/internal/seed"
)

var errUsage = errors.New("usage error")

const usage = `usage: library [command] [args...]

commands:
  demo               scripted session (default)
  list [kind]        list all books, or digital|physical|audio
  search <query>     search title and author
  show <isbn>        show one book
  checkout <isbn>... check out books
  return <isbn>...   return books
  report             availability report`

type app struct {
	catalog *catalog.Service
	out     *render.Writer
}

func newApp(cfg config, stdout io.Writer) (*app, error) {
	svc, err := catalog.NewService(lending.NewService(), notification.NewService())
	if err != nil {
		return nil, err
	}

	books := seed.Default()
	if cfg.SeedFile != "" {
		books, err = seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
	}
	for _, b := range books {
		svc.AddBook(b)
	}

	return &app{catalog: svc, out: render.NewWriter(stdout, cfg.Pretty)}, nil
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		return a.demo()
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "demo":
		return a.demo()
	case "list":
		return a.list(rest)
	case "search":
		if len(rest) != 1 {
			return fmt.Errorf("%w: search takes one query", errUsage)
		}
		books := a.catalog.SearchBooks(rest[0])
		return a.out.Success(book.NewViews(books), map[string]any{"query": rest[0], "total": len(books)})
	case "show":
		if len(rest) != 1 {
			return fmt.Errorf("%w: show takes one isbn", errUsage)
		}
		b, ok := a.catalog.BookByISBN(rest[0])
		if !ok {
			return a.out.Error("NOT_FOUND", catalog.ErrMsgNotFound)
		}
		return a.out.Success(book.NewView(b), nil)
	case "checkout":
		if len(rest) == 0 {
			return fmt.Errorf("%w: checkout needs at least one isbn", errUsage)
		}
		results := make([]catalog.CheckoutResult, 0, len(rest))
		for _, isbn := range rest {
			results = append(results, a.catalog.CheckoutBook(isbn))
		}
		return a.out.Success(results, nil)
	case "return":
		if len(rest) == 0 {
			return fmt.Errorf("%w: return needs at least one isbn", errUsage)
		}
		results := make([]catalog.ReturnResult, 0, len(rest))
		for _, isbn := range rest {
			results = append(results, a.catalog.ReturnBook(isbn))
		}
		return a.out.Success(results, nil)
	case "report":
		return a.out.Success(a.catalog.AvailabilityReport(), nil)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (a *app) list(args []string) error {
	switch len(args) {
	case 0:
		books := a.catalog.AllBooks()
		return a.out.Success(book.NewViews(books), map[string]any{"total": len(books)})
	case 1:
		books := a.catalog.BooksByType(args[0])
		return a.out.Success(book.NewViews(books), map[string]any{"type": args[0], "total": len(books)})
	default:
		return fmt.Errorf("%w: list takes at most one kind", errUsage)
	}
}

type demoStep struct {
	Step   string `json:"step"`
	Result any    `json:"result"`
}

// demo runs the walkthrough: list, search, check the first book out twice,
// return it, then report.
func (a *app) demo() error {
	books := a.catalog.AllBooks()
	steps := []demoStep{{Step: "list", Result: book.NewViews(books)}}

	if len(books) > 0 {
		first := books[0]
		steps = append(steps,
			demoStep{Step: "search " + first.Author(), Result: book.NewViews(a.catalog.SearchBooks(first.Author()))},
			demoStep{Step: "checkout " + first.ISBN(), Result: a.catalog.CheckoutBook(first.ISBN())},
			demoStep{Step: "checkout " + first.ISBN(), Result: a.catalog.CheckoutBook(first.ISBN())},
			demoStep{Step: "report", Result: a.catalog.AvailabilityReport()},
			demoStep{Step: "return " + first.ISBN(), Result: a.catalog.ReturnBook(first.ISBN())},
		)
	}
	steps = append(steps, demoStep{Step: "report", Result: a.catalog.AvailabilityReport()})

	return a.out.Success(steps, nil)
}
