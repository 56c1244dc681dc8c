package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

func adminUsage() error {
	return fmt.Errorf(`usage: storefront admin <cmd>

  product-add        -name N -category C -price P -stock N [-min N] [-desc D] [-supplier ID]
  product-update     -id ID -name N -category C -price P -stock N [-min N]
  product-rm         -id ID
  low-stock
  stock              -id ID -qty N
  quotes             [-status S]
  quote-stats
  quote-status       -id ID -status S
  quote-rm           -id ID
  reservations
  reservation-status -id ID -status S
  reservation-rm     -id ID
  users
  user-update        -id ID [-name N] [-email E] [-phone P]
  user-rm            -id ID
  suppliers          [-page N] [-limit N] [-active true|false]
  supplier-add       -name N -email E [-phone P] [-address A] [-until YYYY-MM-DD]
  supplier-rm        -id ID
  supplier-expired
  notify-low-stock   -id ID`)
}

// cmdAdmin dispatches the back-office subtree. The guard has already
// verified the admin role before this runs.
func (a *app) cmdAdmin(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return adminUsage()
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "product-add":
		return a.adminProductAdd(ctx, rest)
	case "product-update":
		return a.adminProductUpdate(ctx, rest)
	case "product-rm":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		return a.products.Delete(ctx, id)
	case "low-stock":
		products, err := a.products.LowStock(ctx)
		if err != nil {
			return err
		}
		printJSON(products)
		return nil
	case "stock":
		return a.adminStock(ctx, rest)
	case "quotes":
		return a.adminQuotes(ctx, rest)
	case "quote-stats":
		stats, err := a.quotations.Stats(ctx)
		if err != nil {
			return err
		}
		printJSON(stats)
		return nil
	case "quote-status":
		return a.adminQuoteStatus(ctx, rest)
	case "quote-rm":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		return a.quotations.Delete(ctx, id)
	case "reservations":
		reservations, err := a.reservations.List(ctx)
		if err != nil {
			return err
		}
		printJSON(reservations)
		return nil
	case "reservation-status":
		return a.adminReservationStatus(ctx, rest)
	case "reservation-rm":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		return a.reservations.Delete(ctx, id)
	case "users":
		users, err := a.users.List(ctx)
		if err != nil {
			return err
		}
		printJSON(users)
		return nil
	case "user-update":
		return a.adminUserUpdate(ctx, rest)
	case "user-rm":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		return a.users.Delete(ctx, id)
	case "suppliers":
		return a.adminSuppliers(ctx, rest)
	case "supplier-add":
		return a.adminSupplierAdd(ctx, rest)
	case "supplier-rm":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		return a.suppliers.Delete(ctx, id)
	case "supplier-expired":
		suppliers, err := a.suppliers.ExpiredAgreements(ctx)
		if err != nil {
			return err
		}
		printJSON(suppliers)
		return nil
	case "notify-low-stock":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		if err := a.suppliers.NotifyLowStock(ctx, id); err != nil {
			return err
		}
		fmt.Println("notification queued")
		return nil
	default:
		return adminUsage()
	}
}

func (a *app) adminProductAdd(ctx context.Context, args []string) error {
	in, err := parseProductInput("product-add", args)
	if err != nil {
		return err
	}
	p, err := a.products.Create(ctx, *in)
	if err != nil {
		return err
	}
	printJSON(p)
	return nil
}

func (a *app) adminProductUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("product-update", flag.ExitOnError)
	id := fs.String("id", "", "product id")
	rest := withProductFlags(fs)
	_ = fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("need -id")
	}
	in, err := rest()
	if err != nil {
		return err
	}
	p, err := a.products.Update(ctx, *id, *in)
	if err != nil {
		return err
	}
	printJSON(p)
	return nil
}

func (a *app) adminStock(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("stock", flag.ExitOnError)
	id := fs.String("id", "", "product id")
	qty := fs.Int("qty", -1, "absolute stock quantity")
	_ = fs.Parse(args)
	if *id == "" || *qty < 0 {
		return fmt.Errorf("need -id and a non-negative -qty")
	}
	p, err := a.products.UpdateStock(ctx, *id, domain.StockUpdate{Stock: *qty})
	if err != nil {
		return err
	}
	printJSON(p)
	return nil
}

func (a *app) adminQuotes(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("quotes", flag.ExitOnError)
	status := fs.String("status", "", "filter by status")
	_ = fs.Parse(args)

	var (
		quotes []domain.Quotation
		err    error
	)
	if *status != "" {
		quotes, err = a.quotations.ByStatus(ctx, domain.QuotationStatus(*status))
	} else {
		quotes, err = a.quotations.List(ctx)
	}
	if err != nil {
		return err
	}
	printJSON(quotes)
	return nil
}

func (a *app) adminQuoteStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("quote-status", flag.ExitOnError)
	id := fs.String("id", "", "quotation id")
	status := fs.String("status", "", "new status")
	_ = fs.Parse(args)
	if *id == "" || *status == "" {
		return fmt.Errorf("need -id and -status")
	}
	q, err := a.quotations.UpdateStatus(ctx, *id, domain.QuotationStatus(*status))
	if err != nil {
		return err
	}
	printJSON(q)
	return nil
}

func (a *app) adminReservationStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reservation-status", flag.ExitOnError)
	id := fs.String("id", "", "reservation id")
	status := fs.String("status", "", "new status")
	_ = fs.Parse(args)
	if *id == "" || *status == "" {
		return fmt.Errorf("need -id and -status")
	}
	r, err := a.reservations.UpdateStatus(ctx, *id, domain.ReservationStatus(*status))
	if err != nil {
		return err
	}
	printJSON(r)
	return nil
}

func (a *app) adminUserUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("user-update", flag.ExitOnError)
	id := fs.String("id", "", "user id")
	name := fs.String("name", "", "new display name")
	email := fs.String("email", "", "new email")
	phone := fs.String("phone", "", "new phone number")
	_ = fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("need -id")
	}
	u, err := a.users.Update(ctx, *id, domain.ProfileUpdate{Name: *name, Email: *email, Phone: *phone})
	if err != nil {
		return err
	}
	printJSON(u)
	return nil
}

func (a *app) adminSuppliers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("suppliers", flag.ExitOnError)
	page := fs.String("page", "", "page number")
	limit := fs.String("limit", "", "page size")
	active := fs.String("active", "", "filter by active flag (true|false)")
	_ = fs.Parse(args)

	q := domain.SupplierQuery{Page: atoiOr(*page, 0), Limit: atoiOr(*limit, 0)}
	if *active != "" {
		b := *active == "true"
		q.IsActive = &b
	}

	pageData, err := a.suppliers.List(ctx, q)
	if err != nil {
		return err
	}
	printJSON(pageData)
	return nil
}

func (a *app) adminSupplierAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("supplier-add", flag.ExitOnError)
	name := fs.String("name", "", "supplier name")
	email := fs.String("email", "", "contact email")
	phone := fs.String("phone", "", "contact phone")
	address := fs.String("address", "", "postal address")
	until := fs.String("until", "", "agreement end date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	in := domain.SupplierInput{Name: *name, Email: *email, Phone: *phone, Address: *address}
	if *until != "" {
		end, err := time.Parse("2006-01-02", *until)
		if err != nil {
			return fmt.Errorf("bad -until: %w", err)
		}
		in.AgreementEnd = end
	}
	if err := a.validate.Struct(in); err != nil {
		return err
	}

	sup, err := a.suppliers.Create(ctx, in)
	if err != nil {
		return err
	}
	printJSON(sup)
	return nil
}

// withProductFlags registers the shared product fields on fs and returns a
// closure that assembles the validated input after parsing.
func withProductFlags(fs *flag.FlagSet) func() (*domain.ProductInput, error) {
	name := fs.String("name", "", "product name")
	desc := fs.String("desc", "", "description")
	category := fs.String("category", "", "category")
	price := fs.Float64("price", 0, "unit price")
	stock := fs.Int("stock", 0, "stock quantity")
	min := fs.Int("min", 0, "minimum stock level")
	supplier := fs.String("supplier", "", "supplier id")

	return func() (*domain.ProductInput, error) {
		in := &domain.ProductInput{
			Name:        *name,
			Description: *desc,
			Category:    *category,
			Price:       *price,
			Stock:       *stock,
			MinStock:    *min,
			Supplier:    *supplier,
		}
		if in.Name == "" || in.Category == "" || in.Price <= 0 {
			return nil, fmt.Errorf("need -name, -category and a positive -price")
		}
		return in, nil
	}
}

func parseProductInput(name string, args []string) (*domain.ProductInput, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	build := withProductFlags(fs)
	_ = fs.Parse(args)
	return build()
}

func requireID(args []string) (string, error) {
	fs := flag.NewFlagSet("id", flag.ExitOnError)
	id := fs.String("id", "", "resource id")
	_ = fs.Parse(args)
	if *id == "" {
		return "", fmt.Errorf("need -id")
	}
	return *id, nil
}
