package repository

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedha/ftk-go/internal/api/dto"
	"github.com/fedha/ftk-go/internal/models"
)

// loginAs signs a fresh session in against the shared sandbox.
func loginAs(t *testing.T, baseURL, username string) *session {
	t.Helper()
	s := newSession(t, baseURL)
	_, err := s.auth.Login(context.Background(), username, "password123")
	require.NoError(t, err)
	return s
}

// walletAddressOf finds another user's wallet address through the
// directory, the way the app would.
func walletAddressOf(t *testing.T, s *session, query string) string {
	t.Helper()
	users, err := s.wallet.SearchUsers(context.Background(), query)
	require.NoError(t, err)
	require.NotEmpty(t, users)
	return users[0].WalletAddress
}

func TestBalanceSnapshot(t *testing.T) {
	s := loginAs(t, newSandbox(t), "alice")

	w, err := s.wallet.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(500)), "balance %s", w.Balance)
	assert.Equal(t, "FTK", w.Currency)
	assert.True(t, strings.HasPrefix(w.Address, "FTK-"))
	assert.Equal(t, "Alice Rivers", w.EntityName)
	assert.Equal(t, "user", w.EntityType)
}

func TestBalanceRequiresAuth(t *testing.T) {
	s := newSession(t, newSandbox(t))

	_, err := s.wallet.Balance(context.Background())
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindStatus, f.Kind)
	assert.Equal(t, http.StatusUnauthorized, f.Status)
}

func TestTransferHappyPath(t *testing.T) {
	base := newSandbox(t)
	alice := loginAs(t, base, "alice")
	coffee := loginAs(t, base, "coffeecorner")

	receipt, err := alice.wallet.Transfer(context.Background(), TransferParams{
		RecipientWallet: walletAddressOf(t, alice, "coffee"),
		Amount:          decimal.NewFromInt(100),
		Description:     "lunch tab",
		Pin:             "1234",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.TransactionHash)
	assert.Equal(t, "Coffee Corner", receipt.Recipient)
	assert.True(t, receipt.Fee.Equal(decimal.NewFromInt(1)), "fee %s", receipt.Fee)
	// 500 - 100 - 1% fee
	assert.True(t, receipt.NewBalance.Equal(decimal.NewFromInt(399)), "balance %s", receipt.NewBalance)

	// the authoritative balance agrees with the receipt
	w, err := alice.wallet.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, w.Balance.Equal(receipt.NewBalance))

	// recipient was credited the amount, not the fee
	cw, err := coffee.wallet.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, cw.Balance.Equal(decimal.NewFromInt(1300)), "balance %s", cw.Balance)

	// both sides see the movement with matching hash and directions
	sent, err := alice.wallet.Transactions(context.Background(), 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, sent)
	assert.False(t, sent[0].IsIncoming())
	assert.Equal(t, "lunch tab", sent[0].Description)

	recv, err := coffee.wallet.Transactions(context.Background(), 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, recv)
	assert.True(t, recv[0].IsIncoming())
	assert.Equal(t, sent[0].Hash, recv[0].Hash)

	// and the recipient was notified
	notifs, unread, err := coffee.wallet.Notifications(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
	require.NotEmpty(t, notifs)
	assert.Contains(t, notifs[0].Message, "Alice Rivers")
}

func TestTransferWrongPin(t *testing.T) {
	alice := loginAs(t, newSandbox(t), "alice")

	_, err := alice.wallet.Transfer(context.Background(), TransferParams{
		RecipientWallet: walletAddressOf(t, alice, "coffee"),
		Amount:          decimal.NewFromInt(10),
		Pin:             "9999",
	})
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindLogical, f.Kind)
	assert.Equal(t, "Incorrect PIN", f.Message)

	// nothing moved
	w, err := alice.wallet.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(500)))
}

func TestTransferInsufficientBalance(t *testing.T) {
	alice := loginAs(t, newSandbox(t), "alice")

	_, err := alice.wallet.Transfer(context.Background(), TransferParams{
		RecipientWallet: walletAddressOf(t, alice, "coffee"),
		Amount:          decimal.NewFromInt(500), // fee pushes past the balance
		Pin:             "1234",
	})
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindLogical, f.Kind)
	assert.Equal(t, "Insufficient balance", f.Message)
}

func TestTransferToOwnWallet(t *testing.T) {
	alice := loginAs(t, newSandbox(t), "alice")

	w, err := alice.wallet.Balance(context.Background())
	require.NoError(t, err)

	_, err = alice.wallet.Transfer(context.Background(), TransferParams{
		RecipientWallet: w.Address,
		Amount:          decimal.NewFromInt(10),
		Pin:             "1234",
	})
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindLogical, f.Kind)
}

func TestPinLockoutAfterThreeFailures(t *testing.T) {
	alice := loginAs(t, newSandbox(t), "alice")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := alice.wallet.VerifyPin(ctx, "0000")
		var f *Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, "Incorrect PIN", f.Message)
	}

	_, err := alice.wallet.VerifyPin(ctx, "0000")
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Contains(t, f.Message, "locked")

	// even the right PIN bounces while locked
	_, err = alice.wallet.VerifyPin(ctx, "1234")
	require.ErrorAs(t, err, &f)
	assert.Contains(t, f.Message, "locked")

	st, err := alice.wallet.PinStatus(ctx)
	require.NoError(t, err)
	assert.True(t, st.HasPin)
	assert.True(t, st.Locked)
	assert.NotEmpty(t, st.LockedUntil)
}

func TestPinVerifyResetsAttemptCounter(t *testing.T) {
	alice := loginAs(t, newSandbox(t), "alice")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := alice.wallet.VerifyPin(ctx, "0000")
		require.Error(t, err)
	}
	_, err := alice.wallet.VerifyPin(ctx, "1234")
	require.NoError(t, err)

	// the counter started over
	_, err = alice.wallet.VerifyPin(ctx, "0000")
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "Incorrect PIN", f.Message)
}

func TestSetPinLifecycle(t *testing.T) {
	s := newSession(t, newSandbox(t))
	ctx := context.Background()
	_, _, err := s.auth.Register(ctx, RegisterParams{
		AccountType: "user",
		FullName:    "Bob Stone",
		Email:       "bob@example.com",
		Password:    "hunter2hunter2",
	})
	require.NoError(t, err)

	st, err := s.wallet.PinStatus(ctx)
	require.NoError(t, err)
	assert.False(t, st.HasPin)

	_, err = s.wallet.SetPin(ctx, "2468", "8642")
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "PINs do not match", f.Message)

	_, err = s.wallet.SetPin(ctx, "2468", "2468")
	require.NoError(t, err)

	// set is one-shot; changing needs the current PIN
	_, err = s.wallet.SetPin(ctx, "1111", "1111")
	require.Error(t, err)

	_, err = s.wallet.ChangePin(ctx, "2468", "1357", "1357")
	require.NoError(t, err)

	_, err = s.wallet.VerifyPin(ctx, "1357")
	require.NoError(t, err)
}

func TestPaymentRequestLifecycle(t *testing.T) {
	base := newSandbox(t)
	coffee := loginAs(t, base, "coffeecorner")
	alice := loginAs(t, base, "alice")
	ctx := context.Background()

	pr, err := coffee.wallet.CreatePaymentRequest(ctx, decimal.NewFromFloat(12.50), "", "two lattes")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pr.Code, "PR-"))
	assert.NotEmpty(t, pr.QRData)
	assert.Equal(t, "FTK", pr.Currency)
	assert.NotEmpty(t, pr.ExpiresAt)

	// the customer checks it before paying
	check, err := alice.wallet.VerifyPayment(ctx, pr.Code)
	require.NoError(t, err)
	assert.True(t, check.Valid)
	assert.Equal(t, "Coffee Corner", check.MerchantName)
	assert.Equal(t, "two lattes", check.Description)
	assert.True(t, check.Amount.Equal(decimal.NewFromFloat(12.50)))

	_, err = alice.wallet.VerifyPayment(ctx, "PR-NOPE")
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindLogical, f.Kind)
	assert.Equal(t, "Payment request not found", f.Message)

	// the open request counts as pending on the dashboard
	d, err := coffee.wallet.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, d.PendingPayments)
}

func TestPayPaymentRequestByCode(t *testing.T) {
	base := newSandbox(t)
	coffee := loginAs(t, base, "coffeecorner")
	alice := loginAs(t, base, "alice")
	ctx := context.Background()

	pr, err := coffee.wallet.CreatePaymentRequest(ctx, decimal.NewFromInt(40), "", "beans")
	require.NoError(t, err)

	receipt, err := alice.wallet.PayPaymentRequest(ctx, pr.Code, "1234")
	require.NoError(t, err)
	assert.Equal(t, "Coffee Corner", receipt.Recipient)
	assert.True(t, receipt.NewBalance.Equal(decimal.NewFromInt(460)), "balance %s", receipt.NewBalance)

	// settles the request: no longer payable, paid in history
	_, err = alice.wallet.VerifyPayment(ctx, pr.Code)
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindLogical, f.Kind)

	_, err = alice.wallet.PayPaymentRequest(ctx, pr.Code, "1234")
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindLogical, f.Kind)

	history, err := coffee.wallet.PaymentHistory(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, history)
	assert.Equal(t, models.PaymentStatusPaid, history[0].Status)

	// the merchant was credited and notified
	w, err := coffee.wallet.Balance(ctx)
	require.NoError(t, err)
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(1240)))

	notifs, _, err := coffee.wallet.Notifications(ctx, 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, notifs)
	assert.Contains(t, notifs[0].Message, "Alice Rivers")
}

func TestPaymentRequestIsMerchantOnly(t *testing.T) {
	alice := loginAs(t, newSandbox(t), "alice")

	_, err := alice.wallet.CreatePaymentRequest(context.Background(), decimal.NewFromInt(5), "", "")
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindStatus, f.Kind)
	assert.Equal(t, http.StatusForbidden, f.Status)
	assert.Equal(t, "Merchant account required", f.Message)
}

func TestNfcTapToPayFlow(t *testing.T) {
	base := newSandbox(t)
	alice := loginAs(t, base, "alice")
	coffee := loginAs(t, base, "coffeecorner")
	ctx := context.Background()

	_, err := alice.wallet.RegisterNfcDevice(ctx, "pixel-9", "Alice's phone")
	require.NoError(t, err)

	tok, err := alice.wallet.GenerateNfcToken(ctx, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.NotEmpty(t, tok.PaymentToken)
	assert.NotEmpty(t, tok.NFCData)

	// the terminal reads the tap and validates it
	v, err := coffee.wallet.ValidateNfcPayment(ctx, tok.NFCData)
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, "Alice Rivers", v.SenderName)
	assert.Equal(t, tok.PaymentToken, v.PaymentToken)
	assert.True(t, v.Amount.Equal(decimal.NewFromInt(50)))

	// charge less than the authorized ceiling
	receipt, err := coffee.wallet.ProcessPosPayment(ctx, v.SenderWallet, decimal.NewFromInt(35), v.PaymentToken, "nfc")
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.TransactionHash)

	w, err := alice.wallet.Balance(ctx)
	require.NoError(t, err)
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(465)), "balance %s", w.Balance)

	// the token is single-use
	_, err = coffee.wallet.ProcessPosPayment(ctx, v.SenderWallet, decimal.NewFromInt(5), v.PaymentToken, "nfc")
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindLogical, f.Kind)

	// and the charge landed in the merchant's payment history
	history, err := coffee.wallet.PaymentHistory(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, history)
	assert.Equal(t, models.PaymentStatusPaid, history[0].Status)
	assert.True(t, history[0].Amount.Equal(decimal.NewFromInt(35)))
}

func TestPosChargeAboveAuthorizedAmount(t *testing.T) {
	base := newSandbox(t)
	alice := loginAs(t, base, "alice")
	coffee := loginAs(t, base, "coffeecorner")
	ctx := context.Background()

	tok, err := alice.wallet.GenerateNfcToken(ctx, decimal.NewFromInt(20))
	require.NoError(t, err)

	_, err = coffee.wallet.ProcessPosPayment(ctx, "", decimal.NewFromInt(25), tok.PaymentToken, "qr")
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindLogical, f.Kind)
	assert.Contains(t, f.Message, "authorized")
}

func TestDashboardAggregates(t *testing.T) {
	base := newSandbox(t)
	alice := loginAs(t, base, "alice")
	coffee := loginAs(t, base, "coffeecorner")
	ctx := context.Background()

	// empty dashboard first: no sales, never nil recents
	d, err := coffee.wallet.Dashboard(ctx)
	require.NoError(t, err)
	assert.True(t, d.TodaySales.IsZero())
	assert.NotNil(t, d.RecentTransactions)
	assert.Empty(t, d.RecentTransactions)
	assert.True(t, d.WalletBalance.Equal(decimal.NewFromInt(1200)))

	_, err = alice.wallet.Transfer(ctx, TransferParams{
		RecipientWallet: walletAddressOf(t, alice, "coffee"),
		Amount:          decimal.NewFromInt(80),
		Pin:             "1234",
	})
	require.NoError(t, err)

	d, err = coffee.wallet.Dashboard(ctx)
	require.NoError(t, err)
	assert.True(t, d.TodaySales.Equal(decimal.NewFromInt(80)), "sales %s", d.TodaySales)
	assert.Equal(t, 1, d.TotalTransactions)
	require.Len(t, d.RecentTransactions, 1)
	assert.Equal(t, "Alice Rivers", d.RecentTransactions[0].Counterparty)
	assert.True(t, d.RecentTransactions[0].IsIncoming())
}

func TestDashboardIsMerchantOnly(t *testing.T) {
	alice := loginAs(t, newSandbox(t), "alice")

	_, err := alice.wallet.Dashboard(context.Background())
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindStatus, f.Kind)
	assert.Equal(t, http.StatusForbidden, f.Status)
}

func TestMerchantSettingsRoundTrip(t *testing.T) {
	coffee := loginAs(t, newSandbox(t), "coffeecorner")
	ctx := context.Background()

	settings, err := coffee.wallet.MerchantSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Coffee Corner", settings.MerchantName)
	assert.True(t, settings.NFCEnabled)
	assert.False(t, settings.AcceptCard)

	off := false
	_, err = coffee.wallet.UpdateMerchantSettings(ctx, dto.MerchantSettingsUpdate{
		MerchantName: "Coffee Corner II",
		NfcEnabled:   &off,
	})
	require.NoError(t, err)

	settings, err = coffee.wallet.MerchantSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Coffee Corner II", settings.MerchantName)
	assert.False(t, settings.NFCEnabled)
	// untouched toggles keep their values
	assert.True(t, settings.QREnabled)
}

func TestNotificationsMarkRead(t *testing.T) {
	base := newSandbox(t)
	alice := loginAs(t, base, "alice")
	coffee := loginAs(t, base, "coffeecorner")
	ctx := context.Background()

	_, err := alice.wallet.Transfer(ctx, TransferParams{
		RecipientWallet: walletAddressOf(t, alice, "coffee"),
		Amount:          decimal.NewFromInt(10),
		Pin:             "1234",
	})
	require.NoError(t, err)
	_, err = alice.wallet.Transfer(ctx, TransferParams{
		RecipientWallet: walletAddressOf(t, alice, "coffee"),
		Amount:          decimal.NewFromInt(20),
		Pin:             "1234",
	})
	require.NoError(t, err)

	notifs, unread, err := coffee.wallet.Notifications(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)
	require.Len(t, notifs, 2)

	_, err = coffee.wallet.MarkNotificationRead(ctx, notifs[0].ID)
	require.NoError(t, err)

	_, unread, err = coffee.wallet.Notifications(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	// users cannot mark each other's notifications
	_, err = alice.wallet.MarkNotificationRead(ctx, notifs[1].ID)
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindLogical, f.Kind)

	_, err = coffee.wallet.MarkAllNotificationsRead(ctx)
	require.NoError(t, err)
	_, unread, err = coffee.wallet.Notifications(ctx, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestTransferRequestApproveFlow(t *testing.T) {
	base := newSandbox(t)
	alice := loginAs(t, base, "alice")
	coffee := loginAs(t, base, "coffeecorner")
	ctx := context.Background()

	// the merchant asks alice for money
	aliceID := func() int {
		users, err := coffee.wallet.SearchUsers(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, users, 1)
		return users[0].ID
	}()

	created, err := coffee.wallet.CreateTransferRequest(ctx, aliceID, decimal.NewFromInt(30), "invoice 7")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.Code, "TR-"))

	pending, err := alice.wallet.PendingTransferRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Coffee Corner", pending[0].RequesterName)
	assert.Equal(t, "invoice 7", pending[0].Description)

	// requester sees nothing pending on their own inbox
	mine, err := coffee.wallet.PendingTransferRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, mine)

	receipt, err := alice.wallet.ApproveTransferRequest(ctx, pending[0].ID, "1234")
	require.NoError(t, err)
	assert.True(t, receipt.Amount.Equal(decimal.NewFromInt(30)))

	// approving settles it
	pending, err = alice.wallet.PendingTransferRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = alice.wallet.ApproveTransferRequest(ctx, created.ID, "1234")
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindLogical, f.Kind)

	w, err := coffee.wallet.Balance(ctx)
	require.NoError(t, err)
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(1230)), "balance %s", w.Balance)
}

func TestTransferRequestApproveNeedsPin(t *testing.T) {
	base := newSandbox(t)
	alice := loginAs(t, base, "alice")
	coffee := loginAs(t, base, "coffeecorner")
	ctx := context.Background()

	users, err := coffee.wallet.SearchUsers(ctx, "alice")
	require.NoError(t, err)
	created, err := coffee.wallet.CreateTransferRequest(ctx, users[0].ID, decimal.NewFromInt(30), "")
	require.NoError(t, err)

	_, err = alice.wallet.ApproveTransferRequest(ctx, created.ID, "0000")
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, KindLogical, f.Kind)
	assert.Equal(t, "Incorrect PIN", f.Message)

	// the request stays pending after a failed approval
	pending, err := alice.wallet.PendingTransferRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestTransferRequestReject(t *testing.T) {
	base := newSandbox(t)
	alice := loginAs(t, base, "alice")
	coffee := loginAs(t, base, "coffeecorner")
	ctx := context.Background()

	users, err := coffee.wallet.SearchUsers(ctx, "alice")
	require.NoError(t, err)
	created, err := coffee.wallet.CreateTransferRequest(ctx, users[0].ID, decimal.NewFromInt(30), "")
	require.NoError(t, err)

	_, err = alice.wallet.RejectTransferRequest(ctx, created.ID)
	require.NoError(t, err)

	pending, err := alice.wallet.PendingTransferRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// the requester learns about it
	notifs, _, err := coffee.wallet.Notifications(ctx, 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, notifs)
	assert.Contains(t, notifs[0].Message, "declined")
}

func TestSearchUsersExcludesSelf(t *testing.T) {
	alice := loginAs(t, newSandbox(t), "alice")

	users, err := alice.wallet.SearchUsers(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, users)

	users, err = alice.wallet.SearchUsers(context.Background(), "coffee")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "coffeecorner", users[0].Username)
	assert.NotEmpty(t, users[0].WalletAddress)
}

func TestTransactionsPaging(t *testing.T) {
	base := newSandbox(t)
	alice := loginAs(t, base, "alice")
	ctx := context.Background()

	to := walletAddressOf(t, alice, "coffee")
	for i := 1; i <= 3; i++ {
		_, err := alice.wallet.Transfer(ctx, TransferParams{
			RecipientWallet: to,
			Amount:          decimal.NewFromInt(int64(i)),
			Pin:             "1234",
		})
		require.NoError(t, err)
	}

	page, err := alice.wallet.Transactions(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	// newest first
	assert.True(t, page[0].Amount.Equal(decimal.NewFromInt(3)))

	rest, err := alice.wallet.Transactions(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.True(t, rest[0].Amount.Equal(decimal.NewFromInt(1)))
}

func TestNotificationsPaging(t *testing.T) {
	base := newSandbox(t)
	alice := loginAs(t, base, "alice")
	coffee := loginAs(t, base, "coffeecorner")
	ctx := context.Background()

	to := walletAddressOf(t, alice, "coffee")
	for i := 1; i <= 3; i++ {
		_, err := alice.wallet.Transfer(ctx, TransferParams{
			RecipientWallet: to,
			Amount:          decimal.NewFromInt(int64(i)),
			Pin:             "1234",
		})
		require.NoError(t, err)
	}

	page, unread, err := coffee.wallet.Notifications(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	// unread spans the whole inbox, not just the page
	assert.Equal(t, 3, unread)
	// newest first
	assert.Contains(t, page[0].Message, "3 FTK")

	rest, _, err := coffee.wallet.Notifications(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Contains(t, rest[0].Message, "1 FTK")

	past, _, err := coffee.wallet.Notifications(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestPaymentHistoryLimit(t *testing.T) {
	base := newSandbox(t)
	coffee := loginAs(t, base, "coffeecorner")
	alice := loginAs(t, base, "alice")
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		pr, err := coffee.wallet.CreatePaymentRequest(ctx, decimal.NewFromInt(int64(i)), "", "")
		require.NoError(t, err)
		_, err = alice.wallet.PayPaymentRequest(ctx, pr.Code, "1234")
		require.NoError(t, err)
	}

	history, err := coffee.wallet.PaymentHistory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// newest first
	assert.True(t, history[0].Amount.Equal(decimal.NewFromInt(3)))
}
