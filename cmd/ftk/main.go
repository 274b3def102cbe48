// Command ftk is a terminal client for the FTK wallet API. It drives
// the same repositories a mobile frontend would, against a real
// backend or the local sandbox.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fedha/ftk-go/internal/api"
	"github.com/fedha/ftk-go/internal/api/dto"
	"github.com/fedha/ftk-go/internal/config"
	"github.com/fedha/ftk-go/internal/repository"
	"github.com/fedha/ftk-go/internal/tokenstore"
)

const usage = `usage: ftk <command> [flags]

Session:
  login -u <user> -p <password>      sign in and store the session token
  register                           create an account
  logout                             drop the stored session
  whoami                             show the signed-in profile

Wallet:
  balance                            show the wallet balance
  transactions [-limit N] [-offset N]
  transfer -to <wallet> -amount <n> -pin <pin> [-note <text>]

PIN:
  pin-status | pin-set | pin-change | pin-verify

Payments (merchant):
  request-payment -amount <n> [-note <text>]
  verify-payment -code <PR-...>
  pay -code <PR-...> -pin <pin>
  payment-history
  pos-charge -token <NFC-...> -amount <n> [-wallet <addr>] [-method nfc|qr]

NFC:
  nfc-register -device <id> [-name <text>]
  nfc-token -amount <n>
  nfc-validate -data <payload>

Merchant:
  dashboard | settings
  settings-update [-name <text>] [-phone <text>] [-nfc=true|false] [-qr=true|false]

Notifications:
  notifications | mark-read -id <n> | mark-all-read

Money requests:
  request-money -to <user-id> -amount <n> [-note <text>]
  requests
  approve -id <n> -pin <pin>
  reject -id <n>
  search -q <text>
`

type app struct {
	auth   *repository.AuthRepository
	wallet *repository.WalletRepository
	tokens tokenstore.Store
	log    *logrus.Logger
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	log := logrus.New()
	cfg := config.Load(log)
	log.SetLevel(cfg.Level())

	tokens, err := tokenstore.NewFile(cfg.TokenFile, cfg.TokenPassphrase)
	if err != nil {
		log.Fatal("token store: ", err)
	}

	client, err := api.New(api.Config{
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Tokens:     api.TokenSourceFunc(tokens.Get),
		Logger:     log,
	})
	if err != nil {
		log.Fatal("api client: ", err)
	}

	a := &app{
		auth:   repository.NewAuthRepository(client, tokens, log),
		wallet: repository.NewWalletRepository(client, log),
		tokens: tokens,
		log:    log,
	}

	if err := a.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err.Error())
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		a.auth.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return a.whoami(ctx)
	case "balance":
		return a.balance(ctx)
	case "transactions":
		return a.transactions(ctx, args)
	case "transfer":
		return a.transfer(ctx, args)
	case "pin-status":
		return a.pinStatus(ctx)
	case "pin-set":
		return a.pinSet(ctx, args)
	case "pin-change":
		return a.pinChange(ctx, args)
	case "pin-verify":
		return a.pinVerify(ctx, args)
	case "request-payment":
		return a.requestPayment(ctx, args)
	case "verify-payment":
		return a.verifyPayment(ctx, args)
	case "pay":
		return a.pay(ctx, args)
	case "payment-history":
		return a.paymentHistory(ctx)
	case "pos-charge":
		return a.posCharge(ctx, args)
	case "nfc-register":
		return a.nfcRegister(ctx, args)
	case "nfc-token":
		return a.nfcToken(ctx, args)
	case "nfc-validate":
		return a.nfcValidate(ctx, args)
	case "dashboard":
		return a.dashboard(ctx)
	case "settings":
		return a.settings(ctx)
	case "settings-update":
		return a.settingsUpdate(ctx, args)
	case "notifications":
		return a.notifications(ctx)
	case "mark-read":
		return a.markRead(ctx, args)
	case "mark-all-read":
		return a.markAllRead(ctx)
	case "request-money":
		return a.requestMoney(ctx, args)
	case "requests":
		return a.requests(ctx)
	case "approve":
		return a.approve(ctx, args)
	case "reject":
		return a.reject(ctx, args)
	case "search":
		return a.search(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("u", "", "username or email")
	pass := fs.String("p", "", "password")
	fs.Parse(args)

	u, err := a.auth.Login(ctx, *user, *pass)
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s (%s)\n", u.Username, u.Role)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	pass := fs.String("p", "", "password")
	accountType := fs.String("type", "user", "account type: user or merchant")
	company := fs.String("company", "", "company name (merchants)")
	phone := fs.String("phone", "", "phone number")
	fs.Parse(args)

	u, message, err := a.auth.Register(ctx, repository.RegisterParams{
		AccountType: *accountType,
		FullName:    *name,
		Email:       *email,
		Password:    *pass,
		Phone:       *phone,
		CompanyName: *company,
	})
	if err != nil {
		return err
	}
	fmt.Printf("account created: %s (%s)\n", u.Username, u.Role)
	if message != "" {
		fmt.Println(message)
	}
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	a.auth.Bootstrap(ctx)
	state := a.auth.State()
	if !state.Authenticated {
		return fmt.Errorf("not signed in")
	}
	u := state.User
	fmt.Printf("%s <%s>\n", u.FullName, u.Email)
	fmt.Printf("username: %s  role: %s\n", u.Username, u.Role)
	if u.MerchantSource != "" {
		fmt.Printf("merchant source: %s\n", u.MerchantSource)
	}
	return nil
}

func (a *app) balance(ctx context.Context) error {
	w, err := a.wallet.Balance(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", w.Balance, w.Currency)
	if !w.LockedBalance.IsZero() {
		fmt.Printf("locked: %s\n", w.LockedBalance)
	}
	fmt.Printf("earned: %s  spent: %s\n", w.LifetimeEarned, w.LifetimeSpent)
	fmt.Printf("address: %s\n", w.Address)
	return nil
}

func (a *app) transactions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("transactions", flag.ExitOnError)
	limit := fs.Int("limit", 20, "page size")
	offset := fs.Int("offset", 0, "page offset")
	fs.Parse(args)

	list, err := a.wallet.Transactions(ctx, *limit, *offset)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("no transactions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, t := range list {
		sign := "-"
		if t.IsIncoming() {
			sign = "+"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%s\t%s\t%s\n",
			t.CreatedAt, sign, t.Amount, t.Type, t.Counterparty, t.Status)
	}
	return w.Flush()
}

func (a *app) transfer(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	to := fs.String("to", "", "recipient wallet address")
	amount := fs.String("amount", "", "amount to send")
	pin := fs.String("pin", "", "transaction PIN")
	note := fs.String("note", "", "description")
	fs.Parse(args)

	amt, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", *amount)
	}

	receipt, err := a.wallet.Transfer(ctx, repository.TransferParams{
		RecipientWallet: *to,
		Amount:          amt,
		Description:     *note,
		Pin:             *pin,
	})
	if err != nil {
		return err
	}
	fmt.Printf("sent %s to %s (fee %s)\n", receipt.Amount, receipt.Recipient, receipt.Fee)
	fmt.Printf("tx: %s  new balance: %s\n", receipt.TransactionHash, receipt.NewBalance)
	return nil
}

func (a *app) pinStatus(ctx context.Context) error {
	st, err := a.wallet.PinStatus(ctx)
	if err != nil {
		return err
	}
	switch {
	case st.Locked:
		fmt.Printf("PIN locked until %s\n", st.LockedUntil)
	case st.HasPin:
		fmt.Println("PIN is set")
	default:
		fmt.Println("no PIN set")
	}
	return nil
}

func (a *app) pinSet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pin-set", flag.ExitOnError)
	pin := fs.String("pin", "", "new 4-digit PIN")
	confirm := fs.String("confirm", "", "confirm PIN")
	fs.Parse(args)

	message, err := a.wallet.SetPin(ctx, *pin, *confirm)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func (a *app) pinChange(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pin-change", flag.ExitOnError)
	current := fs.String("current", "", "current PIN")
	pin := fs.String("pin", "", "new 4-digit PIN")
	confirm := fs.String("confirm", "", "confirm new PIN")
	fs.Parse(args)

	message, err := a.wallet.ChangePin(ctx, *current, *pin, *confirm)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func (a *app) pinVerify(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pin-verify", flag.ExitOnError)
	pin := fs.String("pin", "", "PIN to verify")
	fs.Parse(args)

	message, err := a.wallet.VerifyPin(ctx, *pin)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func (a *app) requestPayment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("request-payment", flag.ExitOnError)
	amount := fs.String("amount", "", "amount to charge")
	currency := fs.String("currency", "", "currency code")
	note := fs.String("note", "", "description")
	fs.Parse(args)

	amt, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", *amount)
	}

	pr, err := a.wallet.CreatePaymentRequest(ctx, amt, *currency, *note)
	if err != nil {
		return err
	}
	fmt.Printf("code: %s\n", pr.Code)
	fmt.Printf("qr:   %s\n", pr.QRData)
	fmt.Printf("%s %s, expires %s\n", pr.Amount, pr.Currency, pr.ExpiresAt)
	return nil
}

func (a *app) verifyPayment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("verify-payment", flag.ExitOnError)
	code := fs.String("code", "", "payment request code")
	fs.Parse(args)

	check, err := a.wallet.VerifyPayment(ctx, *code)
	if err != nil {
		return err
	}
	if !check.Valid {
		fmt.Println("not payable")
		return nil
	}
	fmt.Printf("%s %s to %s\n", check.Amount, check.Currency, check.MerchantName)
	if check.Description != "" {
		fmt.Println(check.Description)
	}
	return nil
}

func (a *app) pay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pay", flag.ExitOnError)
	code := fs.String("code", "", "payment request code")
	pin := fs.String("pin", "", "transaction PIN")
	fs.Parse(args)

	receipt, err := a.wallet.PayPaymentRequest(ctx, *code, *pin)
	if err != nil {
		return err
	}
	fmt.Printf("paid %s to %s (tx %s)\n", receipt.Amount, receipt.Recipient, receipt.TransactionHash)
	fmt.Printf("new balance: %s\n", receipt.NewBalance)
	return nil
}

func (a *app) paymentHistory(ctx context.Context) error {
	list, err := a.wallet.PaymentHistory(ctx, 50)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("no payments")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, p := range list {
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\n", p.CreatedAt, p.RequestCode, p.Amount, p.Currency, p.Status)
	}
	return w.Flush()
}

func (a *app) posCharge(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pos-charge", flag.ExitOnError)
	token := fs.String("token", "", "payment token from the customer tap")
	amount := fs.String("amount", "", "amount to charge")
	wallet := fs.String("wallet", "", "customer wallet address")
	method := fs.String("method", "nfc", "nfc or qr")
	fs.Parse(args)

	amt, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", *amount)
	}

	receipt, err := a.wallet.ProcessPosPayment(ctx, *wallet, amt, *token, *method)
	if err != nil {
		return err
	}
	fmt.Printf("charged %s (tx %s)\n", receipt.Amount, receipt.TransactionHash)
	return nil
}

func (a *app) nfcRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("nfc-register", flag.ExitOnError)
	device := fs.String("device", "", "device identifier")
	name := fs.String("name", "", "device name")
	fs.Parse(args)

	message, err := a.wallet.RegisterNfcDevice(ctx, *device, *name)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func (a *app) nfcToken(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("nfc-token", flag.ExitOnError)
	amount := fs.String("amount", "", "amount to authorize")
	fs.Parse(args)

	amt, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", *amount)
	}

	tok, err := a.wallet.GenerateNfcToken(ctx, amt)
	if err != nil {
		return err
	}
	fmt.Printf("token: %s\n", tok.PaymentToken)
	fmt.Printf("data:  %s\n", tok.NFCData)
	fmt.Printf("%s authorized, expires %s\n", tok.Amount, tok.ExpiresAt)
	return nil
}

func (a *app) nfcValidate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("nfc-validate", flag.ExitOnError)
	data := fs.String("data", "", "payload read from the tap")
	fs.Parse(args)

	v, err := a.wallet.ValidateNfcPayment(ctx, *data)
	if err != nil {
		return err
	}
	if !v.Valid {
		fmt.Println("not valid")
		return nil
	}
	fmt.Printf("%s authorized by %s (%s)\n", v.Amount, v.SenderName, v.SenderWallet)
	fmt.Printf("token: %s\n", v.PaymentToken)
	return nil
}

func (a *app) dashboard(ctx context.Context) error {
	d, err := a.wallet.Dashboard(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("today: %s FTK over %d transactions\n", d.TodaySales, d.TotalTransactions)
	fmt.Printf("balance: %s  pending requests: %d\n", d.WalletBalance, d.PendingPayments)
	for _, t := range d.RecentTransactions {
		fmt.Printf("  %s  %s  %s\n", t.CreatedAt, t.Amount, t.Description)
	}
	return nil
}

func (a *app) settings(ctx context.Context) error {
	s, err := a.wallet.MerchantSettings(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", s.MerchantName, s.Status)
	fmt.Printf("email: %s  phone: %s\n", s.Email, s.Phone)
	fmt.Printf("accept FTK: %v  card: %v  nfc: %v  qr: %v\n",
		s.AcceptFTK, s.AcceptCard, s.NFCEnabled, s.QREnabled)
	return nil
}

func (a *app) settingsUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("settings-update", flag.ExitOnError)
	name := fs.String("name", "", "merchant name")
	phone := fs.String("phone", "", "phone number")
	logo := fs.String("logo", "", "logo URL")
	nfc := fs.String("nfc", "", "enable NFC: true or false")
	qr := fs.String("qr", "", "enable QR: true or false")
	fs.Parse(args)

	update := dto.MerchantSettingsUpdate{
		MerchantName: *name,
		Phone:        *phone,
		Logo:         *logo,
	}
	var err error
	if update.NfcEnabled, err = parseToggle(*nfc); err != nil {
		return err
	}
	if update.QrEnabled, err = parseToggle(*qr); err != nil {
		return err
	}

	message, err := a.wallet.UpdateMerchantSettings(ctx, update)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func parseToggle(s string) (*bool, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("invalid toggle %q", s)
	}
	return &v, nil
}

func (a *app) notifications(ctx context.Context) error {
	list, unread, err := a.wallet.Notifications(ctx, 50, 0)
	if err != nil {
		return err
	}
	fmt.Printf("%d unread\n", unread)
	for _, n := range list {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("%s [%d] %s: %s\n", marker, n.ID, n.Title, n.Message)
	}
	return nil
}

func (a *app) markRead(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mark-read", flag.ExitOnError)
	id := fs.Int("id", 0, "notification ID")
	fs.Parse(args)

	message, err := a.wallet.MarkNotificationRead(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func (a *app) markAllRead(ctx context.Context) error {
	message, err := a.wallet.MarkAllNotificationsRead(ctx)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func (a *app) requestMoney(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("request-money", flag.ExitOnError)
	to := fs.Int("to", 0, "recipient user ID")
	amount := fs.String("amount", "", "amount to request")
	note := fs.String("note", "", "description")
	fs.Parse(args)

	amt, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", *amount)
	}

	created, err := a.wallet.CreateTransferRequest(ctx, *to, amt, *note)
	if err != nil {
		return err
	}
	fmt.Printf("request %s sent (id %d)\n", created.Code, created.ID)
	return nil
}

func (a *app) requests(ctx context.Context) error {
	list, err := a.wallet.PendingTransferRequests(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("no pending requests")
		return nil
	}
	for _, r := range list {
		fmt.Printf("[%d] %s requests %s FTK (expires %s)\n",
			r.ID, r.RequesterName, r.Amount, r.ExpiresAt)
		if r.Description != "" {
			fmt.Printf("    %s\n", r.Description)
		}
	}
	return nil
}

func (a *app) approve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("approve", flag.ExitOnError)
	id := fs.Int("id", 0, "request ID")
	pin := fs.String("pin", "", "transaction PIN")
	fs.Parse(args)

	receipt, err := a.wallet.ApproveTransferRequest(ctx, *id, *pin)
	if err != nil {
		return err
	}
	fmt.Printf("paid %s to %s (tx %s)\n", receipt.Amount, receipt.Recipient, receipt.TransactionHash)
	return nil
}

func (a *app) reject(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reject", flag.ExitOnError)
	id := fs.Int("id", 0, "request ID")
	fs.Parse(args)

	message, err := a.wallet.RejectTransferRequest(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func (a *app) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	q := fs.String("q", "", "name, username or email fragment")
	fs.Parse(args)

	users, err := a.wallet.SearchUsers(ctx, *q)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, u := range users {
		fmt.Printf("[%d] %s (%s)  %s\n", u.ID, u.FullName, u.Username, u.WalletAddress)
	}
	return nil
}
