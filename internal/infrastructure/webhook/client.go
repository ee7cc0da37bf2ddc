// Package webhook implementa los proxies de solo lectura hacia los webhooks
// externos del CRM (pacientes, métodos de pago, recetas, números de teléfono,
// estadísticas y canales). Cada operación hace exactamente una llamada de red;
// no hay reintentos ni circuit breaking.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/zogen/backoffice-api/internal/domain"
)

// UpstreamError conserva el status del webhook para que el handler lo refleje
// al cliente en lugar de un 500 genérico.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("webhook respondió %d", e.Status)
}

// Unwrap permite errors.Is(err, domain.ErrUpstream).
func (e *UpstreamError) Unwrap() error { return domain.ErrUpstream }

// Client consume los webhooks externos. Usa net/http con timeout por
// petición; una respuesta no-2xx se convierte en UpstreamError.
type Client struct {
	baseURL    string
	canalesURL string
	httpClient *http.Client
}

// NewClient construye el cliente con el timeout configurado.
func NewClient(baseURL, canalesURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		canalesURL: canalesURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Patients devuelve el listado crudo de pacientes del webhook.
func (c *Client) Patients(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, c.baseURL+"/patients", nil)
}

// PaymentMethods devuelve los métodos de pago registrados.
func (c *Client) PaymentMethods(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, c.baseURL+"/payment-methods", nil)
}

// MedicalPrescriptions devuelve las recetas médicas.
func (c *Client) MedicalPrescriptions(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, c.baseURL+"/medical-prescriptions", nil)
}

// PhoneNumbers devuelve los números de WhatsApp Business disponibles.
func (c *Client) PhoneNumbers(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, c.baseURL+"/phone-numbers", nil)
}

// Stats devuelve las estadísticas de mensajería del número indicado.
func (c *Client) Stats(ctx context.Context, phoneNumberID string) (json.RawMessage, error) {
	return c.get(ctx, c.baseURL+"/stats", url.Values{"phoneNumberId": {phoneNumberID}})
}

// Canales devuelve los canales del CRM de WhatsApp (host aparte).
func (c *Client) Canales(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, c.canalesURL, nil)
}

func (c *Client) get(ctx context.Context, rawURL string, query url.Values) (json.RawMessage, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("url del webhook: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta del webhook: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}
	return json.RawMessage(body), nil
}
