package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CasinoBot_Go/internal/casino"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/duel"
	"github.com/osse101/CasinoBot_Go/internal/economy"
	"github.com/osse101/CasinoBot_Go/internal/ledger"
	"github.com/osse101/CasinoBot_Go/internal/payout"
	"github.com/osse101/CasinoBot_Go/internal/random"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

type capturedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// webhookEdit mirrors the PATCH body with components flattened to what tests inspect
type webhookEdit struct {
	Content    *string                   `json:"content"`
	Embeds     []*discordgo.MessageEmbed `json:"embeds"`
	Components []struct {
		Components []struct {
			Label    string `json:"label"`
			CustomID string `json:"custom_id"`
		} `json:"components"`
	} `json:"components"`
}

// TestContext is a Discord session whose REST calls are captured, wired to
// real services over the in-memory store
type TestContext struct {
	Session  *discordgo.Session
	Services *Services
	Store    *ledger.Store
	Random   *random.Sequence

	// Responses maps a GET path suffix onto a JSON body; anything else is a 404
	Responses map[string]string

	mu       sync.Mutex
	requests []capturedRequest
}

func SetupTestContext(t *testing.T, draws ...float64) *TestContext {
	t.Helper()

	store := ledger.NewMemoryStore(domain.DefaultShopItems)
	seq := random.NewSequence(draws...)
	engine := payout.NewEngine(seq)

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	ctx := &TestContext{
		Session: session,
		Services: &Services{
			Casino:  casino.NewService(store, engine, nil, time.Second),
			Economy: economy.NewService(store, seq, nil, economy.Config{StoreTimeout: time.Second}),
			Duels:   duel.NewManager(store, engine, nil, duel.Config{}),
		},
		Store:     store,
		Random:    seq,
		Responses: map[string]string{},
	}

	session.Client = &http.Client{Transport: &MockRoundTripper{RoundTripFunc: ctx.roundTrip}}
	return ctx
}

func (c *TestContext) roundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}

	c.mu.Lock()
	c.requests = append(c.requests, capturedRequest{Method: req.Method, Path: req.URL.Path, Body: body})
	c.mu.Unlock()

	status, payload := http.StatusOK, "{}"
	if req.Method == http.MethodGet {
		status, payload = http.StatusNotFound, `{"message":"Unknown Message","code":10008}`
		for suffix, resp := range c.Responses {
			if strings.HasSuffix(req.URL.Path, suffix) {
				status, payload = http.StatusOK, resp
			}
		}
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(payload)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}, nil
}

func (c *TestContext) captured(match func(capturedRequest) bool) []capturedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []capturedRequest
	for _, r := range c.requests {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Callbacks returns the interaction acknowledgements sent so far
func (c *TestContext) Callbacks(t *testing.T) []discordgo.InteractionResponse {
	t.Helper()
	var out []discordgo.InteractionResponse
	for _, r := range c.captured(func(r capturedRequest) bool {
		return r.Method == http.MethodPost && strings.HasSuffix(r.Path, "/callback")
	}) {
		var resp struct {
			Type discordgo.InteractionResponseType `json:"type"`
		}
		require.NoError(t, json.Unmarshal(r.Body, &resp))
		out = append(out, discordgo.InteractionResponse{Type: resp.Type})
	}
	return out
}

// LastEdit returns the most recent edit of the original response
func (c *TestContext) LastEdit(t *testing.T) webhookEdit {
	t.Helper()
	edits := c.captured(func(r capturedRequest) bool { return r.Method == http.MethodPatch })
	require.NotEmpty(t, edits, "expected the interaction response to be edited")

	var edit webhookEdit
	require.NoError(t, json.Unmarshal(edits[len(edits)-1].Body, &edit))
	return edit
}

// LastEmbed returns the first embed of the most recent edit
func (c *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	edit := c.LastEdit(t)
	require.NotEmpty(t, edit.Embeds, "expected an embed response")
	return edit.Embeds[0]
}

// LastContent returns the plain text of the most recent edit
func (c *TestContext) LastContent(t *testing.T) string {
	t.Helper()
	edit := c.LastEdit(t)
	require.NotNil(t, edit.Content, "expected a text response")
	return *edit.Content
}

type followup struct {
	Content string                 `json:"content"`
	Flags   discordgo.MessageFlags `json:"flags"`
}

// Followups returns the followup messages sent so far
func (c *TestContext) Followups(t *testing.T) []followup {
	t.Helper()
	var out []followup
	for _, r := range c.captured(func(r capturedRequest) bool {
		return r.Method == http.MethodPost && strings.Contains(r.Path, "/webhooks/")
	}) {
		var params followup
		require.NoError(t, json.Unmarshal(r.Body, &params))
		out = append(out, params)
	}
	return out
}

// Balance reads a user's points straight from the store
func (c *TestContext) Balance(t *testing.T, userID string) int64 {
	t.Helper()
	points, err := c.Store.GetBalance(t.Context(), userID)
	require.NoError(t, err)
	return points
}

func testUser(id string) *discordgo.User {
	return &discordgo.User{ID: id, Username: id}
}

func commandInteraction(name string, user *discordgo.User, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:     "interaction-" + name,
			AppID:  "app",
			Token:  "token",
			Type:   discordgo.InteractionApplicationCommand,
			Member: &discordgo.Member{User: user},
			Data: discordgo.ApplicationCommandInteractionData{
				Name:     name,
				Options:  opts,
				Resolved: &discordgo.ApplicationCommandInteractionDataResolved{Users: map[string]*discordgo.User{}},
			},
		},
	}
}

// withResolvedUsers adds users to the interaction's resolved data
func withResolvedUsers(i *discordgo.InteractionCreate, users ...*discordgo.User) *discordgo.InteractionCreate {
	data := i.Data.(discordgo.ApplicationCommandInteractionData)
	for _, u := range users {
		data.Resolved.Users[u.ID] = u
	}
	i.Data = data
	return i
}

func componentInteraction(customID string, user *discordgo.User) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:     "component-" + customID,
			AppID:  "app",
			Token:  "token",
			Type:   discordgo.InteractionMessageComponent,
			Member: &discordgo.Member{User: user},
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.ButtonComponent,
			},
		},
	}
}

func intOpt(name string, v int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(v),
	}
}

func strOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: v,
	}
}

func userOpt(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionUser,
		Value: id,
	}
}
