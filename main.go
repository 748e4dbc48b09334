package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fondajosmar/fonda-client/authz"
	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/config"
	"github.com/fondajosmar/fonda-client/models"
	"github.com/fondajosmar/fonda-client/services"
	"github.com/fondajosmar/fonda-client/session"
	"github.com/fondajosmar/fonda-client/utils"
)

func init() {
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "loaded .env file")
	}
	utils.InitLogger()
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: fonda-client <command> [flags]

commands:
  login -u <username> -p <password>   authenticate and persist the session
  logout                              clear the persisted session
  whoami                              show the active session and capabilities
  clientes | productos | tipos | mesas | empleados | reservas | ventas
                                      list a resource (restricted by role)
  ticket -venta <id> -o <file>        download a sale's ticket PDF
`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg := config.Load()
	store, err := session.Open(cfg.SessionDBPath)
	if err != nil {
		utils.ErrorLogger.Fatalf("open session store: %v", err)
	}
	if _, err := store.Restore(); err != nil {
		utils.ErrorLogger.Fatalf("restore session: %v", err)
	}

	api := services.New(client.New(store), cfg)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch os.Args[1] {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		user := fs.String("u", "", "username")
		pass := fs.String("p", "", "password")
		_ = fs.Parse(os.Args[2:])
		if *user == "" || *pass == "" {
			usage()
		}
		raw, err := api.Auth.Login(ctx, *user, *pass)
		if err != nil {
			utils.ErrorLogger.Fatalf("login: %v", err)
		}
		sess, err := store.Login(raw, models.ExtractToken(raw))
		if err != nil {
			utils.ErrorLogger.Fatalf("login: %v", err)
		}
		fmt.Printf("sesión iniciada: %s (%s)\n", sess.Username, authz.RoleLabel(sess.Roles))

	case "logout":
		if err := store.Logout(); err != nil {
			utils.ErrorLogger.Fatalf("logout: %v", err)
		}
		fmt.Println("sesión cerrada")

	case "whoami":
		sess := store.Current()
		if sess == nil {
			fmt.Println("sin sesión")
			return
		}
		caps := authz.CapabilitiesFor(sess)
		fmt.Printf("%s (%s)\n", sess.Username, authz.RoleLabel(sess.Roles))
		fmt.Printf("clientes:%v productos:%v mesas:%v empleados:%v ventas:%v pedidos:%v\n",
			caps.ManageCustomers, caps.ManageProducts, caps.ManageTables,
			caps.ManageEmployees, caps.RegisterSales, caps.ServeOrders)

	case "ticket":
		fs := flag.NewFlagSet("ticket", flag.ExitOnError)
		saleID := fs.Int64("venta", 0, "sale id")
		out := fs.String("o", "ticket.pdf", "output file")
		_ = fs.Parse(os.Args[2:])
		if *saleID == 0 {
			usage()
		}
		pdf, err := api.Sales.Ticket(ctx, *saleID)
		if err != nil {
			utils.ErrorLogger.Fatalf("ticket: %v", err)
		}
		if err := os.WriteFile(*out, pdf, 0o644); err != nil {
			utils.ErrorLogger.Fatalf("ticket: %v", err)
		}
		fmt.Printf("ticket de la venta %d guardado en %s\n", *saleID, *out)

	default:
		listCommand(ctx, os.Args[1], api, store)
	}
}

func listCommand(ctx context.Context, resource string, api *services.API, store *session.Store) {
	sess := store.Current()

	switch resource {
	case "clientes":
		rows, err := api.Customers.List(ctx)
		fatalOn(err)
		for _, c := range authz.VisibleCustomers(sess, rows) {
			fmt.Printf("#%d  %-24s %-14s %s\n", c.ID, c.Name, c.Phone, c.Email)
		}
	case "productos":
		rows, err := api.Products.List(ctx)
		fatalOn(err)
		for _, p := range rows {
			fmt.Printf("#%d  %-24s $%.2f\n", p.ID, p.Name, p.Price)
		}
	case "tipos":
		rows, err := api.Types.List(ctx)
		fatalOn(err)
		for _, t := range rows {
			fmt.Printf("#%d  %s\n", t.ID, t.Label)
		}
	case "mesas":
		rows, err := api.Tables.List(ctx)
		fatalOn(err)
		for _, m := range rows {
			fmt.Printf("#%d  mesa %d (%d personas) %s\n", m.ID, m.Number, m.Capacity, m.Location)
		}
	case "empleados":
		rows, err := api.Employees.List(ctx)
		fatalOn(err)
		for _, e := range rows {
			estado := "inactivo"
			if e.Active() {
				estado = "activo"
			}
			fmt.Printf("#%d  %-24s %-10s %s\n", e.ID, e.Name, e.Position, estado)
		}
	case "reservas":
		rows, err := api.Reservations.List(ctx, "")
		fatalOn(err)
		now := time.Now()
		for _, r := range authz.VisibleReservations(sess, rows) {
			acts := authz.ActionsFor(r, sess, now)
			fmt.Printf("#%d  %s %s  cliente=%d mesa=%d  %s  confirmable=%v\n",
				r.ID, r.Date, r.Time, r.CustomerID, r.TableID, r.Status, acts.CanConfirm)
		}
	case "ventas":
		rows, err := api.Sales.List(ctx, "")
		fatalOn(err)
		for _, v := range authz.VisibleSales(sess, rows) {
			fmt.Printf("#%d  %s  cliente=%d  total=$%.2f\n", v.ID, v.Date, v.CustomerID, v.Total)
		}
	default:
		usage()
	}
}

func fatalOn(err error) {
	if err != nil {
		utils.ErrorLogger.Fatalf("%v", err)
	}
}
