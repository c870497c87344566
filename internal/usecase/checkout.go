package usecase

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// paymentLabels maps the checkout enum onto the labels the operator
// sees in the WhatsApp message.
var paymentLabels = map[string]string{
	"debit":  "Débito",
	"credit": "Crédito",
	"cash":   "Dinheiro",
	"pix":    "PIX",
}

func validateCheckout(data CheckoutData) *ValidationError {

	verr := newValidationError()

	if utf8.RuneCountInString(strings.TrimSpace(data.Name)) < 2 {
		verr.Fields["name"] = "Nome deve ter pelo menos 2 caracteres"
	}
	if utf8.RuneCountInString(strings.TrimSpace(data.City)) < 2 {
		verr.Fields["city"] = "Cidade deve ter pelo menos 2 caracteres"
	}
	if _, ok := paymentLabels[data.PaymentMethod]; !ok {
		verr.Fields["paymentMethod"] = "Selecione um método de pagamento"
	}

	if len(verr.Fields) == 0 {
		return nil
	}
	return verr
}

// BuildCheckoutMessage renders the order as the plain-text block sent
// to the operator: header, customer fields, numbered item list and
// total, plus the observation when one was given.
func BuildCheckoutMessage(data CheckoutData, items []CartItem) (string, error) {

	total, err := TotalPrice(items)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("*Nova Comanda - Pedido*\n\n")
	fmt.Fprintf(&b, "*Cliente:* %s\n", data.Name)
	fmt.Fprintf(&b, "*Cidade:* %s\n", data.City)
	fmt.Fprintf(&b, "*Pagamento:* %s\n\n", paymentLabels[data.PaymentMethod])
	b.WriteString("*Itens do Pedido:*\n")

	for i, item := range items {
		unit, err := decimal.NewFromString(item.MonthlyPrice)
		if err != nil {
			return "", fmt.Errorf("invalid unit price %q for publication %s: %w", item.MonthlyPrice, item.PublicationID, err)
		}
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, item.Title)
		fmt.Fprintf(&b, "   Quantidade: %dx\n", item.Quantity)
		fmt.Fprintf(&b, "   Valor: R$ %s/mês\n", unit.StringFixed(2))
	}

	fmt.Fprintf(&b, "\n*Total: R$ %s*", total.StringFixed(2))

	if data.Observation != "" {
		fmt.Fprintf(&b, "\n\n*Observações:*\n%s", data.Observation)
	}

	return b.String(), nil
}

// EncodeMessage percent-encodes the message for the wa.me text
// parameter. Spaces become %20, not +, matching what the messaging
// service expects.
func EncodeMessage(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

func BuildWhatsAppURL(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, EncodeMessage(message))
}

// Checkout turns the session cart plus the submitted customer fields
// into an outbound WhatsApp link. On success the cart is cleared; on
// validation failure it is left untouched for resubmission.
func (u *UseCase) Checkout(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error) {

	if verr := validateCheckout(req.CheckoutData); verr != nil {
		return CheckoutResponse{}, verr
	}

	items, err := u.loadCart(ctx, req.SessionID)
	if err != nil {
		return CheckoutResponse{}, err
	}
	if len(items) == 0 {
		return CheckoutResponse{}, ErrEmptyCart
	}

	message, err := BuildCheckoutMessage(req.CheckoutData, items)
	if err != nil {
		return CheckoutResponse{}, err
	}

	number, err := u.GetWhatsappNumber(ctx)
	if err != nil {
		return CheckoutResponse{}, err
	}

	if u.sender != nil {
		if err := u.sender.Send(req.SessionID, message); err != nil {
			log.Printf("failed to publish checkout event for session %s: %v", req.SessionID, err)
		}
	}

	if err := u.ClearCart(ctx, ClearCartRequest{SessionID: req.SessionID}); err != nil {
		log.Printf("failed to clear cart after checkout for session %s: %v", req.SessionID, err)
	}

	return CheckoutResponse{
		WhatsAppURL: BuildWhatsAppURL(number, message),
	}, nil
}
