package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"CT-MUSICAL/internal/models"
	"CT-MUSICAL/internal/observability"
)

// CEPAddress is the part of a ViaCEP answer used to fill address fields.
type CEPAddress struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

type viaCEPResponse struct {
	CEPAddress
	// ViaCEP answers 200 with {"erro": true} (older versions: "true") for
	// unknown codes.
	Error any `json:"erro"`
}

// CEPService looks up Brazilian postal codes on ViaCEP.
type CEPService struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewCEPService(baseURL string, timeout time.Duration, logger *zap.Logger) *CEPService {
	return &CEPService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  observability.OrNop(logger),
	}
}

// NormalizeCEP keeps only digits and requires exactly eight of them.
func NormalizeCEP(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() != 8 {
		return "", ErrInvalidCEP
	}
	return b.String(), nil
}

// Lookup resolves cep, which may carry a mask such as "50000-000".
func (s *CEPService) Lookup(ctx context.Context, cep string) (*CEPAddress, error) {
	digits, err := NormalizeCEP(cep)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/json/", s.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build CEP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query CEP service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return nil, ErrInvalidCEP
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CEP service returned status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode CEP response: %w", err)
	}
	if notFound(body.Error) {
		return nil, ErrCEPNotFound
	}

	s.logger.Debug("CEP resolved", zap.String("cep", digits), zap.String("city", body.City))
	return &body.CEPAddress, nil
}

func notFound(flag any) bool {
	switch v := flag.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	}
	return false
}

// AddressGroups maps a form address group to its field key prefix.
var AddressGroups = map[string]string{
	"contratante":  "contratante_endereco_",
	"contratado":   "contratado_endereco_",
	"evento_local": "evento_local_",
}

// FormValues returns the raw form fields of group that a lookup fills.
// Empty answers are left out so they never clear typed values.
func (a *CEPAddress) FormValues(group string) (models.FormValues, bool) {
	prefix, ok := AddressGroups[group]
	if !ok {
		return nil, false
	}

	out := models.FormValues{}
	set := func(field, value string) {
		if value != "" {
			out[prefix+field] = value
		}
	}
	set("logradouro", a.Street)
	set("bairro", a.Neighborhood)
	set("cidade", a.City)
	set("uf", a.State)
	return out, true
}
