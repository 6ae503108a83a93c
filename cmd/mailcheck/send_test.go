package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dropDatabas3/mailcheck/internal/config"
	"github.com/dropDatabas3/mailcheck/internal/email"
	"github.com/dropDatabas3/mailcheck/internal/observability/logger"
)

type stubTransport struct {
	verifyErr error
	sent      int
}

func (s *stubTransport) Verify(context.Context) error { return s.verifyErr }

func (s *stubTransport) Send(context.Context, email.Message) (email.SendResult, error) {
	s.sent++
	return email.SendResult{MessageID: "<stub@example.com>"}, nil
}

func stubFactory(st *stubTransport) email.Factory {
	return func(email.Settings) email.Transport { return st }
}

func sendConfig() config.Config {
	var c config.Config
	c.Mail = config.Mail{Service: "gmail", User: "u@example.com", Pass: "p", SenderEmail: "s@example.com"}
	return c
}

func TestRunSend_OK(t *testing.T) {
	logger.Set(zap.NewNop())
	st := &stubTransport{}
	var out bytes.Buffer

	require.NoError(t, runSend(context.Background(), &out, sendConfig(), stubFactory(st)))

	var body map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "<stub@example.com>", body["details"].(map[string]any)["messageId"])
	assert.Equal(t, 1, st.sent)
}

func TestRunSend_Failure(t *testing.T) {
	logger.Set(zap.NewNop())
	st := &stubTransport{verifyErr: &email.TransportError{Op: email.OpVerify, Err: errors.New("535 5.7.8 bad creds")}}
	var out bytes.Buffer

	err := runSend(context.Background(), &out, sendConfig(), stubFactory(st))
	require.ErrorIs(t, err, errProbeFailed)
	assert.Zero(t, st.sent)

	var body map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "535 5.7.8 bad creds", body["error"])
	assert.Contains(t, body, "troubleshooting")
}

func TestRootCmd_Flags(t *testing.T) {
	root := newRootCmd()
	f := root.PersistentFlags()
	require.NotNil(t, f.Lookup("config"))
	require.NotNil(t, f.Lookup("env-file"))
	assert.Equal(t, ".env", f.Lookup("env-file").DefValue)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["send"])
}
