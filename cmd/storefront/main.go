// Command storefront is the terminal front end of the hardware-store
// system: customer catalog browsing, quotation requests, reservation
// booking, and the admin back office. All business logic lives behind the
// REST API; this binary only renders and posts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/hardwarehub/storefront/internal/core/domain"
	"github.com/hardwarehub/storefront/internal/core/ports"
	"github.com/hardwarehub/storefront/internal/core/service"
	"github.com/hardwarehub/storefront/internal/infrastructure/api"
	"github.com/hardwarehub/storefront/internal/infrastructure/config"
	"github.com/hardwarehub/storefront/internal/infrastructure/storage"
	"github.com/hardwarehub/storefront/pkg/logger"
)

// consoleNavigator is the shell's single navigation sink. In a terminal
// there is nothing to render on redirect, so it tells the user where they
// landed and why.
type consoleNavigator struct{}

func (consoleNavigator) To(route domain.Route) {
	switch route {
	case domain.RouteLogin:
		fmt.Fprintln(os.Stderr, "redirected to /login — please run: storefront login")
	case domain.RouteHome:
		fmt.Fprintln(os.Stderr, "redirected to / — admin access required")
	default:
		fmt.Fprintf(os.Stderr, "redirected to %s\n", route)
	}
}

// app bundles everything a command handler needs.
type app struct {
	session      *service.Session
	nav          ports.Navigator
	auth         ports.AuthAPI
	products     ports.ProductAPI
	quotations   ports.QuotationAPI
	reservations ports.ReservationAPI
	users        ports.UserAPI
	suppliers    ports.SupplierAPI
	validate     *validator.Validate
	log          zerolog.Logger
}

// command couples a handler with the view requirements the route guard
// checks before it may run.
type command struct {
	req domain.Requirement
	run func(a *app, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"login":    {run: (*app).cmdLogin},
	"register": {run: (*app).cmdRegister},
	"logout":   {run: (*app).cmdLogout},
	"whoami":   {req: domain.Requirement{Authenticated: true}, run: (*app).cmdWhoami},
	"profile":  {req: domain.Requirement{Authenticated: true}, run: (*app).cmdProfile},

	"products":   {run: (*app).cmdProducts},
	"categories": {run: (*app).cmdCategories},

	"quote":     {req: domain.Requirement{Authenticated: true}, run: (*app).cmdQuote},
	"my-quotes": {req: domain.Requirement{Authenticated: true}, run: (*app).cmdMyQuotes},

	"reserve":         {req: domain.Requirement{Authenticated: true}, run: (*app).cmdReserve},
	"my-reservations": {req: domain.Requirement{Authenticated: true}, run: (*app).cmdMyReservations},

	"admin": {req: domain.Requirement{AdminOnly: true}, run: (*app).cmdAdmin},
}

func usage() {
	fmt.Fprint(os.Stderr, `storefront — hardware store client
Usage:
  storefront <cmd> [args]

Commands:
  login      -email E -password P
  register   -name N -email E -password P [-phone P]
  logout
  whoami
  profile    [-name N] [-email E] [-phone P]
  products   [-category C] [-search S] [-page N] [-limit N]
  categories
  quote      -product ID -qty N [-notes TEXT]
  my-quotes
  reserve    -product ID -qty N -date YYYY-MM-DD [-notes TEXT]
  my-reservations
  admin      <products|low-stock|stock|quotes|quote-stats|quote-status|
              reservations|reservation-status|users|suppliers|...>
`)
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		fail(err)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	credDir := cfg.CredentialsDir
	if credDir == "" {
		credDir = storage.DefaultDir()
	}
	creds := storage.NewCredentialFile(credDir)

	nav := consoleNavigator{}

	// The pipeline's unauthorized hook is the only 401 handler in the
	// process: tear the session down, then land on login.
	var sess *service.Session
	client := api.NewClient(cfg.APIBaseURL, creds, func() {
		if sess != nil {
			sess.ForceLogout()
		}
		nav.To(domain.RouteLogin)
	}, log)

	authAPI := api.NewAuthClient(client)
	sess = service.NewSession(authAPI, creds, log)
	sess.Bootstrap()

	a := &app{
		session:      sess,
		nav:          nav,
		auth:         authAPI,
		products:     api.NewProductClient(client),
		quotations:   api.NewQuotationClient(client),
		reservations: api.NewReservationClient(client),
		users:        api.NewUserClient(client),
		suppliers:    api.NewSupplierClient(client),
		validate:     validator.New(),
		log:          log,
	}

	name := flag.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		usage()
	}

	// Route guard: every command is a view with declared requirements.
	switch service.Decide(sess.State(), cmd.req) {
	case domain.DecisionRedirectLogin:
		nav.To(domain.RouteLogin)
		os.Exit(1)
	case domain.DecisionRedirectHome:
		nav.To(domain.RouteHome)
		os.Exit(1)
	case domain.DecisionPending:
		// Bootstrap has settled by now; pending cannot occur here.
		os.Exit(1)
	}

	if err := cmd.run(a, ctx, flag.Args()[1:]); err != nil {
		fail(err)
	}
}

// ---- identity commands ----

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("need -email and -password")
	}

	res := a.session.Login(ctx, *email, *password)
	if !res.Success {
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Printf("logged in as %s\n", a.session.State().User.Email)
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	phone := fs.String("phone", "", "phone number")
	_ = fs.Parse(args)

	in := domain.RegisterInput{Name: *name, Email: *email, Password: *password, Phone: *phone}
	if err := a.validate.Struct(in); err != nil {
		return err
	}

	res := a.session.Register(ctx, in)
	if !res.Success {
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Printf("registered and logged in as %s\n", a.session.State().User.Email)
	return nil
}

func (a *app) cmdLogout(ctx context.Context, _ []string) error {
	a.session.Logout(ctx)
	fmt.Println("logged out")
	return nil
}

func (a *app) cmdWhoami(_ context.Context, _ []string) error {
	st := a.session.State()
	printJSON(map[string]any{
		"user":  st.User,
		"admin": st.IsAdmin(),
	})
	return nil
}

func (a *app) cmdProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", "", "new display name")
	email := fs.String("email", "", "new email")
	phone := fs.String("phone", "", "new phone number")
	_ = fs.Parse(args)

	in := domain.ProfileUpdate{Name: *name, Email: *email, Phone: *phone}
	if err := a.validate.Struct(in); err != nil {
		return err
	}

	res := a.session.UpdateProfile(ctx, in)
	if !res.Success {
		return fmt.Errorf("%s", res.Message)
	}
	printJSON(a.session.State().User)
	return nil
}

// ---- catalog commands ----

func (a *app) cmdProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	category := fs.String("category", "", "filter by category")
	search := fs.String("search", "", "name search")
	page := fs.Int("page", 0, "page number")
	limit := fs.Int("limit", 0, "page size")
	_ = fs.Parse(args)

	products, err := a.products.List(ctx, domain.ProductQuery{
		Category: *category, Search: *search, Page: *page, Limit: *limit,
	})
	if err != nil {
		return err
	}
	printJSON(products)
	return nil
}

func (a *app) cmdCategories(ctx context.Context, _ []string) error {
	categories, err := a.products.Categories(ctx)
	if err != nil {
		return err
	}
	printJSON(categories)
	return nil
}

// ---- quotation commands ----

func (a *app) cmdQuote(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("quote", flag.ExitOnError)
	product := fs.String("product", "", "product id")
	qty := fs.Int("qty", 0, "quantity")
	notes := fs.String("notes", "", "free-form notes")
	_ = fs.Parse(args)
	if *product == "" || *qty <= 0 {
		return fmt.Errorf("need -product and a positive -qty")
	}

	q, err := a.quotations.Create(ctx, domain.QuotationInput{
		Items: []domain.QuotationItem{{ProductID: *product, Quantity: *qty}},
		Notes: *notes,
	})
	if err != nil {
		return err
	}
	printJSON(q)
	return nil
}

func (a *app) cmdMyQuotes(ctx context.Context, _ []string) error {
	quotes, err := a.quotations.Mine(ctx)
	if err != nil {
		return err
	}
	printJSON(quotes)
	return nil
}

// ---- reservation commands ----

func (a *app) cmdReserve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reserve", flag.ExitOnError)
	product := fs.String("product", "", "product id")
	qty := fs.Int("qty", 0, "quantity")
	date := fs.String("date", "", "pickup date (YYYY-MM-DD)")
	notes := fs.String("notes", "", "free-form notes")
	_ = fs.Parse(args)
	if *product == "" || *qty <= 0 || *date == "" {
		return fmt.Errorf("need -product, a positive -qty and -date")
	}
	pickup, err := time.Parse("2006-01-02", *date)
	if err != nil {
		return fmt.Errorf("bad -date: %w", err)
	}

	r, err := a.reservations.Create(ctx, domain.ReservationInput{
		ProductID: *product, Quantity: *qty, PickupDate: pickup, Notes: *notes,
	})
	if err != nil {
		return err
	}
	printJSON(r)
	return nil
}

func (a *app) cmdMyReservations(ctx context.Context, _ []string) error {
	reservations, err := a.reservations.Mine(ctx)
	if err != nil {
		return err
	}
	printJSON(reservations)
	return nil
}

// ---- helpers ----

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
