package sentinel

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeometry() orb.MultiPolygon {
	return orb.MultiPolygon{{orb.Ring{
		{73.0, 31.4}, {73.0, 31.5}, {73.1, 31.5}, {73.1, 31.4}, {73.0, 31.4},
	}}}
}

// tokenServer issues a bearer token equal to the requesting client id, so
// downstream assertions can tell which credential pair made a call.
func tokenServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, _, ok := r.BasicAuth()
		if !ok {
			r.ParseForm()
			clientID = r.FormValue("client_id")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":%q,"token_type":"Bearer","expires_in":3600}`, clientID)
	}))
}

func TestCredentialPairsParsesLists(t *testing.T) {
	t.Setenv("COPERNICUS_CLIENT_ID", "first, second")
	t.Setenv("COPERNICUS_CLIENT_SECRET", "s1,s2")
	t.Setenv("COPERNICUS_TOKEN_URL", "http://localhost/token")

	pairs, err := credentialPairs()
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, clientCredentials{id: "first", secret: "s1"}, pairs[0])
	assert.Equal(t, clientCredentials{id: "second", secret: "s2"}, pairs[1])
}

func TestCredentialPairsRejectsMismatchedLists(t *testing.T) {
	t.Setenv("COPERNICUS_CLIENT_ID", "first,second")
	t.Setenv("COPERNICUS_CLIENT_SECRET", "s1")
	t.Setenv("COPERNICUS_TOKEN_URL", "http://localhost/token")

	_, err := credentialPairs()
	require.Error(t, err)
}

func TestCredentialPairsRequiresConfiguration(t *testing.T) {
	t.Setenv("COPERNICUS_CLIENT_ID", "")
	t.Setenv("COPERNICUS_CLIENT_SECRET", "")
	t.Setenv("COPERNICUS_TOKEN_URL", "")

	_, err := credentialPairs()
	require.Error(t, err)
}

func TestRequestImageFallsThroughCredentials(t *testing.T) {
	tokens := tokenServer(t)
	defer tokens.Close()

	process := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer second" {
			w.Write([]byte("tiff-bytes"))
			return
		}
		// the first account is rejected; the request must move on
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer process.Close()

	t.Setenv("COPERNICUS_CLIENT_ID", "first,second")
	t.Setenv("COPERNICUS_CLIENT_SECRET", "s1,s2")
	t.Setenv("COPERNICUS_TOKEN_URL", tokens.URL)
	t.Setenv("COPERNICUS_PROCESS_URL", process.URL)

	content, err := requestImage(context.Background(),
		time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC),
		testGeometry())
	require.NoError(t, err)
	assert.Equal(t, "tiff-bytes", string(content))
}

func TestRequestImageStopsOnContextCancel(t *testing.T) {
	tokens := tokenServer(t)
	defer tokens.Close()

	process := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer process.Close()

	t.Setenv("COPERNICUS_CLIENT_ID", "only")
	t.Setenv("COPERNICUS_CLIENT_SECRET", "s")
	t.Setenv("COPERNICUS_TOKEN_URL", tokens.URL)
	t.Setenv("COPERNICUS_PROCESS_URL", process.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	begin := time.Now()
	_, err := requestImage(ctx,
		time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC),
		testGeometry())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	// the retry sleep must honor cancellation instead of running out the
	// full backoff schedule
	assert.Less(t, time.Since(begin), 3*time.Second)
}
