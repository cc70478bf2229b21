package payments

import (
	"fmt"
	"os"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
	"github.com/sirupsen/logrus"
)

// MethodRazorpay is the payment_method recorded for gateway-verified payments
const MethodRazorpay = "Razorpay"

// Gateway abstracts the payment provider so handlers can be tested without
// network calls. CreateOrder takes the amount in major currency units.
type Gateway interface {
	CreateOrder(amount float64) (orderID string, err error)
	KeyID() string
	VerifySignature(orderID, paymentID, signature string) bool
}

// Razorpay is a stateless Gateway backed by the official SDK. Construct one
// at process start and inject it wherever payments are handled.
type Razorpay struct {
	client *razorpay.Client
	keyID  string
	secret string
}

func NewRazorpay(keyID, secret string) *Razorpay {
	return &Razorpay{
		client: razorpay.NewClient(keyID, secret),
		keyID:  keyID,
		secret: secret,
	}
}

// NewRazorpayFromEnv reads RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET.
func NewRazorpayFromEnv() *Razorpay {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || secret == "" {
		logrus.Warn("razorpay credentials not set, gateway calls will fail")
	}
	return NewRazorpay(keyID, secret)
}

// paise converts major currency units to the gateway's minor units,
// truncating any sub-paise remainder.
func paise(amount float64) int64 {
	return int64(amount * 100)
}

// CreateOrder registers an order with Razorpay and returns its id. The
// amount is converted to paise (x100, truncated) as the gateway requires
// minor units. Capture is immediate.
func (r *Razorpay) CreateOrder(amount float64) (string, error) {
	data := map[string]interface{}{
		"amount":          paise(amount),
		"currency":        "INR",
		"receipt":         fmt.Sprintf("order_rcptid_%d", time.Now().Unix()),
		"payment_capture": 1,
	}
	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order create: %w", err)
	}
	id, ok := body["id"].(string)
	if !ok {
		return "", fmt.Errorf("razorpay order create: response missing order id")
	}
	return id, nil
}

func (r *Razorpay) KeyID() string {
	return r.keyID
}

// VerifySignature checks the HMAC the gateway sent back for a completed
// checkout against our shared secret. Pure computation, no network.
func (r *Razorpay) VerifySignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, r.secret)
}
