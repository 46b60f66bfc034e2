package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// capturedRequest is one call the session made to the Discord REST API
type capturedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

// TestContext is a Discord session whose REST traffic is recorded instead of sent
type TestContext struct {
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu        sync.Mutex
	requests  []capturedRequest
	responses map[string]string
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &TestContext{
		Session:   session,
		responses: make(map[string]string),
	}
	tc.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			tc.mu.Lock()
			tc.requests = append(tc.requests, capturedRequest{
				Method:      req.Method,
				Path:        req.URL.Path,
				ContentType: req.Header.Get("Content-Type"),
				Body:        body,
			})
			resp := tc.responseFor(req.Method, req.URL.Path)
			tc.mu.Unlock()

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(resp)),
				Header:     http.Header{"Content-Type": []string{"application/json"}},
			}, nil
		},
	}
	session.Client = &http.Client{Transport: tc.DiscordMocks}
	return tc
}

// RespondWith makes requests whose path ends in pathSuffix answer with body
func (tc *TestContext) RespondWith(method, pathSuffix, body string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.responses[method+" "+pathSuffix] = body
}

func (tc *TestContext) responseFor(method, path string) string {
	for key, body := range tc.responses {
		m, suffix, _ := strings.Cut(key, " ")
		if m == method && strings.HasSuffix(path, suffix) {
			return body
		}
	}
	return "{}"
}

// Requests returns the captured calls matching method whose path contains fragment
func (tc *TestContext) Requests(method, fragment string) []capturedRequest {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	var out []capturedRequest
	for _, r := range tc.requests {
		if r.Method == method && strings.Contains(r.Path, fragment) {
			out = append(out, r)
		}
	}
	return out
}

func (tc *TestContext) RequestCount() int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return len(tc.requests)
}

// payload is the subset of interaction callbacks, webhook edits and channel messages the tests read.
// Components stay raw because MessageComponent is an interface.
type payload struct {
	Content    string                    `json:"content"`
	Flags      int                       `json:"flags"`
	CustomID   string                    `json:"custom_id"`
	Title      string                    `json:"title"`
	Embeds     []*discordgo.MessageEmbed `json:"embeds"`
	Components []json.RawMessage         `json:"components"`
}

type interactionCallback struct {
	Type discordgo.InteractionResponseType `json:"type"`
	Data payload                           `json:"data"`
}

// decodeCallback reads an InteractionRespond body
func decodeCallback(t *testing.T, req capturedRequest) interactionCallback {
	t.Helper()
	var cb interactionCallback
	require.NoError(t, json.Unmarshal(req.Body, &cb))
	return cb
}

// decodePayload reads a JSON or multipart message body and counts attached files
func decodePayload(t *testing.T, req capturedRequest) (payload, int) {
	t.Helper()
	var p payload

	mediaType, params, err := mime.ParseMediaType(req.ContentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		require.NoError(t, json.Unmarshal(req.Body, &p))
		return p, 0
	}

	files := 0
	reader := multipart.NewReader(bytes.NewReader(req.Body), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if part.FormName() == "payload_json" {
			raw, err := io.ReadAll(part)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, &p))
			continue
		}
		if part.FileName() != "" {
			files++
		}
	}
	return p, files
}

func testMember(userID, username string, permissions int64, roles ...string) *discordgo.Member {
	return &discordgo.Member{
		User:        &discordgo.User{ID: userID, Username: username, Discriminator: "0"},
		Permissions: permissions,
		Roles:       roles,
	}
}

func baseInteraction(kind discordgo.InteractionType, data discordgo.InteractionData, member *discordgo.Member) *discordgo.InteractionCreate {
	guildID := ""
	if member != nil {
		guildID = "guild-1"
	}
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "interaction-1",
			AppID:   "app-1",
			Token:   "token-1",
			Type:    kind,
			GuildID: guildID,
			Member:  member,
			Data:    data,
		},
	}
}

func componentInteraction(customID string, member *discordgo.Member) *discordgo.InteractionCreate {
	return baseInteraction(discordgo.InteractionMessageComponent, discordgo.MessageComponentInteractionData{
		CustomID:      customID,
		ComponentType: discordgo.ButtonComponent,
	}, member)
}

func modalInteraction(name string, member *discordgo.Member) *discordgo.InteractionCreate {
	return baseInteraction(discordgo.InteractionModalSubmit, discordgo.ModalSubmitInteractionData{
		CustomID: CustomIDVerifyModal,
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: CustomIDVerifyName, Value: name},
				},
			},
		},
	}, member)
}

func commandInteraction(name string, member *discordgo.Member, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return baseInteraction(discordgo.InteractionApplicationCommand, discordgo.ApplicationCommandInteractionData{
		Name:    name,
		Options: options,
	}, member)
}

func textMessage(channelID, content string, member *discordgo.Member) *discordgo.MessageCreate {
	author := &discordgo.User{ID: "user-1", Username: "steve", Discriminator: "0"}
	if member != nil && member.User != nil {
		author = member.User
	}
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "message-1",
			ChannelID: channelID,
			GuildID:   "guild-1",
			Content:   content,
			Author:    author,
			Member:    member,
		},
	}
}
