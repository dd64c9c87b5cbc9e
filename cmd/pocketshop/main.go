// pocketshop is a storefront client for a remote product catalog: it
// browses and filters products, keeps a local wishlist, records product
// reviews and remembers a dark/light preference, all persisted in a local
// sqlite file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"pocketshop/internal/catalog"
	"pocketshop/internal/config"
	"pocketshop/internal/errs"
	"pocketshop/internal/kv"
	"pocketshop/internal/query"
	"pocketshop/internal/stores"
	"pocketshop/internal/validate"
)

type app struct {
	catalog  *catalog.Client
	engine   *query.Engine
	wishlist *stores.WishlistStore
	reviews  *stores.ReviewStore
	theme    *stores.ThemeStore
}

func main() {
	cfg := config.Load()

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, f))
		}
	}

	store, err := kv.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	a := &app{
		catalog:  catalog.New(cfg.CatalogBaseURL, cfg.HTTPTimeout),
		engine:   query.NewEngine(),
		wishlist: stores.NewWishlistStore(store),
		reviews:  stores.NewReviewStore(store),
		theme:    stores.NewThemeStore(store),
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	if err := a.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: pocketshop <command> [args]

  browse [-q text] [-category name] [-sort none|low-high|high-low]
  product <id>
  categories
  wishlist ls | add <id> | rm <id>
  review ls <id> | add <id> -rating n -comment text -author name
  theme [toggle]`)
}

// userMessage maps core errors onto the messages shown to the user.
func userMessage(err error) string {
	var ne *errs.NetworkError
	if errors.As(err, &ne) {
		return "Failed to reach the catalog. Please try again."
	}
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return "Invalid input: " + ve.Error()
	}
	var pe *errs.PersistenceError
	if errors.As(err, &pe) {
		return "Could not save your change: " + pe.Error()
	}
	return err.Error()
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "browse":
		return a.browse(ctx, args)
	case "product":
		return a.product(ctx, args)
	case "categories":
		return a.categories(ctx)
	case "wishlist":
		return a.wishlistCmd(ctx, args)
	case "review":
		return a.reviewCmd(args)
	case "theme":
		return a.themeCmd(args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) browse(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("browse", flag.ExitOnError)
	q := fs.String("q", "", "search text (title substring)")
	cat := fs.String("category", query.CategoryAll, "category filter")
	sortBy := fs.String("sort", string(query.SortNone), "none | low-high | high-low")
	_ = fs.Parse(args)

	products, err := a.catalog.ListProducts(ctx)
	if err != nil {
		return err
	}
	st := query.State{Search: validate.Q(*q), Category: *cat, Sort: query.SortOrder(*sortBy)}
	for _, p := range a.engine.Derive(products, st) {
		saved := " "
		if a.wishlist.Contains(p.ID) {
			saved = "*"
		}
		fmt.Printf("%s %4d  %-45s %9.2f  %s\n", saved, p.ID, truncate(p.Title, 45), p.Price, p.Category)
	}
	return nil
}

func (a *app) product(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return &errs.ValidationError{Field: "id", Reason: "product id required"}
	}
	id, ok := validate.ProductID(args[0])
	if !ok {
		return &errs.ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	p, err := a.catalog.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	reviews := a.reviews.List(p.ID)
	rating := a.reviews.AverageRating(p.ID, p.Rating.Rate)

	fmt.Printf("%s\n%.2f  %s\nRating: %.1f (%d catalog ratings, %d local reviews)\n\n%s\n",
		p.Title, p.Price, p.Category, rating, p.Rating.Count, len(reviews), p.Description)
	for _, r := range reviews {
		fmt.Printf("\n[%d/5] %s — %s\n%s\n", r.Rating, r.Author, r.CreatedAt, r.Comment)
	}
	return nil
}

func (a *app) categories(ctx context.Context) error {
	cats, err := a.catalog.ListCategories(ctx)
	if err != nil {
		return err
	}
	fmt.Println(query.CategoryAll)
	for _, c := range cats {
		fmt.Println(c)
	}
	return nil
}

func (a *app) wishlistCmd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		args = []string{"ls"}
	}
	switch args[0] {
	case "ls":
		for _, p := range a.wishlist.List() {
			fmt.Printf("%4d  %-45s %9.2f\n", p.ID, truncate(p.Title, 45), p.Price)
		}
		return nil
	case "add":
		if len(args) < 2 {
			return &errs.ValidationError{Field: "id", Reason: "product id required"}
		}
		id, ok := validate.ProductID(args[1])
		if !ok {
			return &errs.ValidationError{Field: "id", Reason: "must be a positive integer"}
		}
		// Snapshot the product so the wishlist renders without refetching
		p, err := a.catalog.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		return a.wishlist.Add(p)
	case "rm":
		if len(args) < 2 {
			return &errs.ValidationError{Field: "id", Reason: "product id required"}
		}
		id, ok := validate.ProductID(args[1])
		if !ok {
			return &errs.ValidationError{Field: "id", Reason: "must be a positive integer"}
		}
		return a.wishlist.Remove(id)
	default:
		return fmt.Errorf("unknown wishlist subcommand %q", args[0])
	}
}

func (a *app) reviewCmd(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("review needs ls or add")
	}
	switch args[0] {
	case "ls":
		if len(args) < 2 {
			return &errs.ValidationError{Field: "id", Reason: "product id required"}
		}
		id, ok := validate.ProductID(args[1])
		if !ok {
			return &errs.ValidationError{Field: "id", Reason: "must be a positive integer"}
		}
		for _, r := range a.reviews.List(id) {
			fmt.Printf("[%d/5] %s — %s\n%s\n\n", r.Rating, r.Author, r.CreatedAt, r.Comment)
		}
		return nil
	case "add":
		if len(args) < 2 {
			return &errs.ValidationError{Field: "id", Reason: "product id required"}
		}
		id, ok := validate.ProductID(args[1])
		if !ok {
			return &errs.ValidationError{Field: "id", Reason: "must be a positive integer"}
		}
		fs := flag.NewFlagSet("review add", flag.ExitOnError)
		rating := fs.Int("rating", 0, "1..5")
		comment := fs.String("comment", "", "review text")
		author := fs.String("author", "", "display name")
		_ = fs.Parse(args[2:])

		r, err := a.reviews.Add(id, *rating, *comment, *author)
		if err != nil {
			return err
		}
		fmt.Printf("added review %s\n", r.ID)
		return nil
	default:
		return fmt.Errorf("unknown review subcommand %q", args[0])
	}
}

func (a *app) themeCmd(args []string) error {
	if len(args) > 0 && args[0] == "toggle" {
		isDark, err := a.theme.Toggle()
		fmt.Printf("dark=%v\n", isDark)
		// Theme divergence is cosmetic; report the failure but keep the flip
		return err
	}
	t := a.theme.Theme()
	fmt.Printf("dark=%v background=%s text=%s primary=%s\n", t.IsDark, t.Background, t.Text, t.Primary)
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
