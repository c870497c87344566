package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrine-lab/vitrineserv/internal/repository"
)

type fakeRepo struct {
	repository.Interface
	settings map[string]string
}

func (r *fakeRepo) GetSetting(ctx context.Context, key string) (repository.Setting, error) {
	if value, ok := r.settings[key]; ok {
		return repository.Setting{Key: key, Value: value}, nil
	}
	return repository.Setting{}, repository.ErrNotFound
}

type recordingSender struct {
	keys     []string
	messages []string
}

func (s *recordingSender) Send(key, message string) error {
	s.keys = append(s.keys, key)
	s.messages = append(s.messages, message)
	return nil
}

func sampleCart() []CartItem {
	return []CartItem{
		{PublicationID: "a", Title: "Site Institucional", MonthlyPrice: "29.90", Quantity: 2},
		{PublicationID: "b", Title: "Loja Virtual", MonthlyPrice: "15.00", Quantity: 1},
	}
}

func TestBuildCheckoutMessage(t *testing.T) {

	t.Run("renders the full order block", func(t *testing.T) {
		data := CheckoutData{Name: "Ana", City: "Recife", PaymentMethod: "pix"}

		message, err := BuildCheckoutMessage(data, sampleCart())
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(message, "*Nova Comanda - Pedido*\n\n"))
		assert.Contains(t, message, "*Cliente:* Ana\n")
		assert.Contains(t, message, "*Cidade:* Recife\n")
		assert.Contains(t, message, "*Pagamento:* PIX\n")
		assert.Contains(t, message, "\n1. Site Institucional\n   Quantidade: 2x\n   Valor: R$ 29.90/mês\n")
		assert.Contains(t, message, "\n2. Loja Virtual\n   Quantidade: 1x\n   Valor: R$ 15.00/mês\n")
		assert.Contains(t, message, "\n*Total: R$ 74.80*")
		assert.NotContains(t, message, "Observações")
	})

	t.Run("appends the observation section when given", func(t *testing.T) {
		data := CheckoutData{Name: "Ana", City: "Recife", PaymentMethod: "cash", Observation: "entregar sexta"}

		message, err := BuildCheckoutMessage(data, sampleCart())
		require.NoError(t, err)

		assert.Contains(t, message, "*Pagamento:* Dinheiro\n")
		assert.True(t, strings.HasSuffix(message, "\n\n*Observações:*\nentregar sexta"))
	})

	t.Run("payment labels are localized", func(t *testing.T) {
		for method, label := range map[string]string{
			"debit":  "Débito",
			"credit": "Crédito",
			"cash":   "Dinheiro",
			"pix":    "PIX",
		} {
			data := CheckoutData{Name: "Ana", City: "Recife", PaymentMethod: method}
			message, err := BuildCheckoutMessage(data, sampleCart())
			require.NoError(t, err)
			assert.Contains(t, message, "*Pagamento:* "+label+"\n")
		}
	})

	t.Run("unparsable unit price fails the build", func(t *testing.T) {
		items := []CartItem{{PublicationID: "a", Title: "X", MonthlyPrice: "abc", Quantity: 1}}

		_, err := BuildCheckoutMessage(CheckoutData{Name: "Ana", City: "Recife", PaymentMethod: "pix"}, items)
		require.Error(t, err)
	})
}

func TestEncodeMessage(t *testing.T) {
	encoded := EncodeMessage("Total: R$ 74.80\nobrigado")

	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, " ")
	assert.Contains(t, encoded, "%20")
	assert.Contains(t, encoded, "%0A")
	assert.Contains(t, encoded, "%24")
}

func TestBuildWhatsAppURL(t *testing.T) {
	url := BuildWhatsAppURL("5511999999999", "oi tudo bem")
	assert.Equal(t, "https://wa.me/5511999999999?text=oi%20tudo%20bem", url)
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo repository.Interface, sender EventSender) (*UseCase, *fakeStorage) {
		t.Helper()
		storage := newFakeStorage()
		u := New(repo, storage, sender)
		for i := 0; i < 2; i++ {
			_, err := u.AddItemToCart(ctx, AddItemToCartRequest{
				SessionID: "s1", PublicationID: "a", Title: "Site Institucional", MonthlyPrice: "29.90",
			})
			require.NoError(t, err)
		}
		_, err := u.AddItemToCart(ctx, AddItemToCartRequest{
			SessionID: "s1", PublicationID: "b", Title: "Loja Virtual", MonthlyPrice: "15.00",
		})
		require.NoError(t, err)
		return u, storage
	}

	validData := CheckoutData{Name: "Ana", City: "Recife", PaymentMethod: "pix"}

	t.Run("dispatches and clears the cart", func(t *testing.T) {
		sender := &recordingSender{}
		u, _ := seed(t, &fakeRepo{settings: map[string]string{"whatsapp_number": "5581988887777"}}, sender)

		resp, err := u.Checkout(ctx, CheckoutRequest{SessionID: "s1", CheckoutData: validData})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/5581988887777?text="))
		assert.Contains(t, resp.WhatsAppURL, "74.80")

		require.Len(t, sender.messages, 1)
		assert.Equal(t, "s1", sender.keys[0])
		assert.Contains(t, sender.messages[0], "*Total: R$ 74.80*")

		cart, err := u.GetCart(ctx, GetCartRequest{SessionID: "s1"})
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("falls back to the default number", func(t *testing.T) {
		u, _ := seed(t, &fakeRepo{settings: map[string]string{}}, nil)

		resp, err := u.Checkout(ctx, CheckoutRequest{SessionID: "s1", CheckoutData: validData})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/"+DefaultWhatsappNumber+"?text="))
	})

	t.Run("validation failure leaves the cart intact", func(t *testing.T) {
		u, _ := seed(t, &fakeRepo{settings: map[string]string{}}, nil)

		_, err := u.Checkout(ctx, CheckoutRequest{
			SessionID:    "s1",
			CheckoutData: CheckoutData{Name: "A", City: "", PaymentMethod: "barter"},
		})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Nome deve ter pelo menos 2 caracteres", verr.Fields["name"])
		assert.Equal(t, "Cidade deve ter pelo menos 2 caracteres", verr.Fields["city"])
		assert.Equal(t, "Selecione um método de pagamento", verr.Fields["paymentMethod"])

		cart, err := u.GetCart(ctx, GetCartRequest{SessionID: "s1"})
		require.NoError(t, err)
		assert.Len(t, cart.Items, 2)
	})

	t.Run("empty cart cannot check out", func(t *testing.T) {
		u := New(&fakeRepo{settings: map[string]string{}}, newFakeStorage(), nil)

		_, err := u.Checkout(ctx, CheckoutRequest{SessionID: "nobody", CheckoutData: validData})
		require.ErrorIs(t, err, ErrEmptyCart)
	})
}
