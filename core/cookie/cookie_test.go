package cookie_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/minicat/core/cookie"
	"github.com/dmitrymomot/minicat/core/servlet"
	"github.com/dmitrymomot/minicat/core/session"
)

func TestBinder_ExtractToken(t *testing.T) {
	t.Parallel()

	b := cookie.NewBinder()

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		h := http.Header{}
		h.Set("Cookie", "theme=dark; JSESSIONID=0123456789ABCDEF0123456789ABCDEF")
		req := servlet.NewRequest(http.MethodGet, "/", h)

		assert.Equal(t, "0123456789ABCDEF0123456789ABCDEF", b.ExtractToken(req))
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		req := servlet.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, b.ExtractToken(req))
	})
}

func TestBinder_Bind(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	b := cookie.NewBinder(cookie.WithClock(func() time.Time { return now }))

	resp := servlet.NewResponse()
	b.Bind(session.Directive{Token: "ABC123", MaxAge: 30, Path: "/shop"}, resp)

	require.Len(t, resp.Cookies(), 1)
	c := resp.Cookies()[0]
	assert.Equal(t, cookie.SessionCookieName, c.Name)
	assert.Equal(t, "ABC123", c.Value)
	assert.Equal(t, 30, c.MaxAge)
	assert.Equal(t, "/shop", c.Path)
	assert.True(t, now.Add(30*time.Second).Equal(c.Expires))
	assert.False(t, c.HttpOnly)

	assert.Equal(t,
		"\r\nSet-Cookie: JSESSIONID=ABC123; Path=/shop; Expires=Mon, 19 Oct 2026 12:00:30 GMT; Max-Age=30",
		resp.CookiesHeader(),
	)
}

func TestBinder_Cookie(t *testing.T) {
	t.Parallel()

	t.Run("config attributes", func(t *testing.T) {
		t.Parallel()
		b := cookie.NewFromConfig(cookie.Config{HTTPOnly: true, Secure: true})
		c := b.Cookie(session.Directive{Token: "ABC", MaxAge: 10, Path: "/"})
		assert.True(t, c.HttpOnly)
		assert.True(t, c.Secure)
	})

	t.Run("non-positive max age leaves a browser-session cookie", func(t *testing.T) {
		t.Parallel()
		b := cookie.NewBinder()
		c := b.Cookie(session.Directive{Token: "ABC", MaxAge: -1, Path: "/"})
		assert.Zero(t, c.MaxAge)
		assert.True(t, c.Expires.IsZero())
	})
}
