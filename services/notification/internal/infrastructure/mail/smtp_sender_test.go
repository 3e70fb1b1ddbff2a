package mail

import (
	"bufio"
	"context"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/domain/entity"
	"go.uber.org/zap"
)

// fakeSMTPServer 한 세션만 처리하는 최소 SMTP 서버. DATA 본문을 채널로 전달합니다
func fakeSMTPServer(t *testing.T) (string, int, <-chan string) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lis.Close() })

	messages := make(chan string, 1)
	go func() {
		conn, err := lis.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		reply := func(line string) { _, _ = conn.Write([]byte(line + "\r\n")) }
		reply("220 localhost ESMTP")

		var data strings.Builder
		inData := false
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			if inData {
				if line == ".\r\n" {
					inData = false
					messages <- data.String()
					reply("250 OK")
					continue
				}
				data.WriteString(line)
				continue
			}

			cmd := strings.ToUpper(strings.TrimSpace(line))
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				reply("250 localhost")
			case strings.HasPrefix(cmd, "MAIL FROM"), strings.HasPrefix(cmd, "RCPT TO"), strings.HasPrefix(cmd, "RSET"):
				reply("250 OK")
			case cmd == "DATA":
				inData = true
				reply("354 End data with <CR><LF>.<CR><LF>")
			case cmd == "QUIT":
				reply("221 Bye")
				return
			default:
				reply("502 Command not implemented")
			}
		}
	}()

	host, portText, err := net.SplitHostPort(lis.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portText)
	require.NoError(t, err)
	return host, port, messages
}

func TestSMTPSender_Send(t *testing.T) {
	host, port, messages := fakeSMTPServer(t)
	sender := NewSMTPSender(SMTPConfig{Host: host, Port: port, From: "no-reply@nngc.test", FromName: "NNGC"}, zap.NewNop())

	email, err := entity.NewEmail(contracts.EmailKindWelcome, "a@x.com", "Ada", "Welcome to NNGC!", "<p>Hi Ada</p>")
	require.NoError(t, err)
	require.NoError(t, sender.Send(context.Background(), email))

	select {
	case data := <-messages:
		assert.Contains(t, data, "Subject: Welcome to NNGC!")
		assert.Contains(t, data, "a@x.com")
		assert.Contains(t, data, "no-reply@nngc.test")
		assert.Contains(t, data, "text/html")
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}
}

func TestSMTPSender_Unreachable(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())

	sender := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: port, From: "no-reply@nngc.test"}, zap.NewNop())
	email, err := entity.NewEmail(contracts.EmailKindWelcome, "a@x.com", "", "Welcome to NNGC!", "")
	require.NoError(t, err)

	assert.Error(t, sender.Send(context.Background(), email))
}

func TestSMTPSender_CancelledContext(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: 1}, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	email, err := entity.NewEmail(contracts.EmailKindWelcome, "a@x.com", "", "Welcome to NNGC!", "")
	require.NoError(t, err)
	assert.ErrorIs(t, sender.Send(ctx, email), context.Canceled)
}
