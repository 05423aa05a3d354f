package backend

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/garsabers/storefront/app/models"
)

// deviceSignatures is the fixed pool of realistic user-agent strings drawn
// from when synthesizing access log entries.
var deviceSignatures = []string{
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/17C54 Safari/605.1.15",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 16_7_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.7.2 Mobile/15G77 Safari/605.1.15",
	"Mozilla/5.0 (Linux; Android 14; Pixel 8 Pro) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; Android 13; Pixel 7a Build/TQ3A.230705.001) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; Android 13; SM-S918B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.6668.101 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; Android 14; SM-F946B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.6723.91 Mobile Safari/537.36",
	"Mozilla/5.0 (iPad; CPU OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/17B84 Safari/605.1.15",
	"Mozilla/5.0 (Linux; Android 13; OnePlus 11) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/128.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; Android 14; Xiaomi 14 Pro) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; HarmonyOS 3.1; HUAWEI P60 Pro) AppleWebKit/537.36 (KHTML, like Gecko) HuaweiBrowser/14.0.0 Mobile Safari/537.36",
}

func randomDeviceSig() string {
	return deviceSignatures[rand.Intn(len(deviceSignatures))]
}

func randomIP() string {
	return fmt.Sprintf("%d.%d.%d.%d", rand.Intn(255), rand.Intn(255), rand.Intn(255), rand.Intn(255))
}

// newID builds an opaque record id like "ord_4f9c2a1b0" from a UUID.
func newID(prefix string, n int) string {
	return prefix + "_" + randomToken(n)
}

func randomToken(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// newAccessKey returns the opaque token a download link is addressed by.
func newAccessKey() string {
	return randomToken(12)
}

// newTransactionID shapes the transaction reference after the processor:
// PayPal-style for PAYPAL, charge-style for STRIPE, empty otherwise.
func newTransactionID(method models.PaymentMethod) string {
	switch method {
	case models.PaymentMethodPayPal:
		return "PAY-" + strings.ToUpper(randomToken(6))
	case models.PaymentMethodStripe:
		return "ch_" + randomToken(14)
	default:
		return ""
	}
}
