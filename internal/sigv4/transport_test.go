package sigv4

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentials() aws.CredentialsProvider {
	return credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "wJalrXUtnFEMI", "")
}

func TestRoundTripSignsRequest(t *testing.T) {
	var gotAuth, gotDate string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotDate = r.Header.Get("X-Amz-Date")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	client := Client(New(testCredentials(), "bedrock-agentcore", "us-west-2"), 5*time.Second)

	body := []byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	req, err := http.NewRequest(http.MethodPost, srv.URL, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.True(t, strings.HasPrefix(gotAuth, "AWS4-HMAC-SHA256"), "unexpected Authorization: %q", gotAuth)
	assert.Contains(t, gotAuth, "/us-west-2/bedrock-agentcore/aws4_request")
	assert.NotEmpty(t, gotDate)
	assert.Equal(t, body, gotBody)

	// The caller's request must not carry the signature.
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestRoundTripSignsBodylessRequest(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	client := Client(New(testCredentials(), "bedrock-agentcore", "us-east-1"), 5*time.Second)

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, gotAuth, "/us-east-1/bedrock-agentcore/aws4_request")
}

func TestRoundTripCredentialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not reach the server without credentials")
	}))
	defer srv.Close()

	broken := aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{}, errors.New("no credential source configured")
	})
	client := Client(New(broken, "bedrock-agentcore", "us-west-2"), 5*time.Second)

	_, err := client.Get(srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no credential source configured")
}
