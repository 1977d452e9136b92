package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CT-MUSICAL/internal/models"
)

func newViaCEP(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/ws/50000000/json/":
			w.Write([]byte(`{"cep":"50000-000","logradouro":"Rua da Aurora","complemento":"","bairro":"Boa Vista","localidade":"Recife","uf":"PE"}`))
		case "/ws/99999999/json/":
			w.Write([]byte(`{"erro": true}`))
		case "/ws/88888888/json/":
			w.Write([]byte(`{"erro": "true"}`))
		case "/ws/77777777/json/":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNormalizeCEP(t *testing.T) {
	cep, err := NormalizeCEP(" 50000-000 ")
	require.NoError(t, err)
	assert.Equal(t, "50000000", cep)

	for _, bad := range []string{"", "1234567", "123456789", "abcdefgh"} {
		_, err := NormalizeCEP(bad)
		assert.ErrorIs(t, err, ErrInvalidCEP, bad)
	}
}

func TestCEPLookup(t *testing.T) {
	srv := newViaCEP(t)
	svc := NewCEPService(srv.URL+"/ws/", time.Second, nil)
	ctx := context.Background()

	addr, err := svc.Lookup(ctx, "50000-000")
	require.NoError(t, err)
	assert.Equal(t, "Rua da Aurora", addr.Street)
	assert.Equal(t, "Recife", addr.City)
	assert.Equal(t, "PE", addr.State)

	_, err = svc.Lookup(ctx, "99999-999")
	assert.ErrorIs(t, err, ErrCEPNotFound)

	_, err = svc.Lookup(ctx, "88888888")
	assert.ErrorIs(t, err, ErrCEPNotFound)

	_, err = svc.Lookup(ctx, "123")
	assert.ErrorIs(t, err, ErrInvalidCEP)

	_, err = svc.Lookup(ctx, "77777777")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCEPNotFound)
	assert.Contains(t, err.Error(), "503")
}

func TestCEPLookupHonorsContext(t *testing.T) {
	srv := newViaCEP(t)
	svc := NewCEPService(srv.URL+"/ws", time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Lookup(ctx, "50000000")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCEPAddressFormValues(t *testing.T) {
	addr := &CEPAddress{Street: "Rua da Aurora", Neighborhood: "", City: "Recife", State: "PE"}

	values, ok := addr.FormValues("evento_local")
	require.True(t, ok)
	assert.Equal(t, models.FormValues{
		models.KeyVenueStreet: "Rua da Aurora",
		models.KeyVenueCity:   "Recife",
		models.KeyVenueState:  "PE",
	}, values)

	values, ok = addr.FormValues("contratante")
	require.True(t, ok)
	assert.Equal(t, "Rua da Aurora", values.Get(models.KeyContractorStreet))

	_, ok = addr.FormValues("favorecido")
	assert.False(t, ok)
}
