package delivery

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voxboard/internal/domain"
	"github.com/Vovarama1992/voxboard/internal/domain/commands"
	"github.com/Vovarama1992/voxboard/internal/domain/stations"
	"github.com/Vovarama1992/voxboard/internal/infra"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTranscoder struct {
	pcm    []byte
	err    error
	panics bool
}

func (f *fakeTranscoder) Decode(ctx context.Context, inputPath, format string) ([]byte, error) {
	if f.panics {
		panic("ffmpeg wrapper bug")
	}
	return f.pcm, f.err
}

type fakeSTT struct {
	text string
	err  error
}

func (f *fakeSTT) Recognize(ctx context.Context, wav []byte) (string, error) { return f.text, f.err }
func (f *fakeSTT) Close() error                                              { return nil }

type testEnv struct {
	router  http.Handler
	scratch string
}

func newTestEnv(t *testing.T, tr *fakeTranscoder, stt *fakeSTT) testEnv {
	t.Helper()

	zl := logger.NewZapLogger(zap.NewNop().Sugar())
	dir := t.TempDir()
	scratch, err := infra.NewScratchDir(dir)
	require.NoError(t, err)

	svc := domain.NewCommandService(
		scratch,
		"webm",
		stations.NewS1SaveUpload(zl),
		tr,
		stations.NewS3PCMtoWAV(16000, 1),
		stations.NewS4WAVtoText(stt, zl),
		stations.NewS5MapCommand(commands.Default(), zl),
		zl,
	)

	r := chi.NewRouter()
	r.Use(CORS())
	RegisterRoutes(r, NewCommandHandler(svc, 1<<20, zl))

	return testEnv{router: r, scratch: dir}
}

func (e testEnv) assertScratchEmpty(t *testing.T) {
	t.Helper()
	entries, err := os.ReadDir(e.scratch)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func multipartRequest(t *testing.T, field string, payload []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(field, "command.webm")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/process-command", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestProcessCommand_Success(t *testing.T) {
	env := newTestEnv(t, &fakeTranscoder{pcm: make([]byte, 3200)}, &fakeSTT{text: "please draw a circle here"})

	rec := serve(env.router, multipartRequest(t, "audio", []byte("webm")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"action":"draw_circle","transcript":"please draw a circle here"}`, rec.Body.String())
	env.assertScratchEmpty(t)
}

func TestProcessCommand_MissingAudio(t *testing.T) {
	env := newTestEnv(t, &fakeTranscoder{pcm: make([]byte, 3200)}, &fakeSTT{text: "circle"})

	t.Run("other field", func(t *testing.T) {
		rec := serve(env.router, multipartRequest(t, "file", []byte("webm")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"No audio file provided"}`, rec.Body.String())
	})

	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/process-command", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		rec := serve(env.router, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"No audio file provided"}`, rec.Body.String())
	})

	env.assertScratchEmpty(t)
}

func TestProcessCommand_TooLarge(t *testing.T) {
	env := newTestEnv(t, &fakeTranscoder{pcm: make([]byte, 3200)}, &fakeSTT{text: "circle"})

	rec := serve(env.router, multipartRequest(t, "audio", make([]byte, 2<<20)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.assertScratchEmpty(t)
}

func TestProcessCommand_ConversionFailed(t *testing.T) {
	env := newTestEnv(t, &fakeTranscoder{err: errors.New("EBML header parsing failed")}, &fakeSTT{text: "circle"})

	rec := serve(env.router, multipartRequest(t, "audio", []byte("garbage")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Audio conversion failed"}`, rec.Body.String())
	env.assertScratchEmpty(t)
}

func TestProcessCommand_NoSpeech(t *testing.T) {
	env := newTestEnv(t, &fakeTranscoder{pcm: make([]byte, 3200)}, &fakeSTT{text: ""})

	rec := serve(env.router, multipartRequest(t, "audio", []byte("webm")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"action":"unknown_command","transcript":""}`, rec.Body.String())
	env.assertScratchEmpty(t)
}

func TestProcessCommand_RecognizerDown(t *testing.T) {
	env := newTestEnv(t, &fakeTranscoder{pcm: make([]byte, 3200)}, &fakeSTT{err: errors.New("dial tcp: refused")})

	rec := serve(env.router, multipartRequest(t, "audio", []byte("webm")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"action":"unknown_command","transcript":""}`, rec.Body.String())
}

func TestProcessCommand_ServerError(t *testing.T) {
	env := newTestEnv(t, &fakeTranscoder{panics: true}, &fakeSTT{text: "circle"})

	rec := serve(env.router, multipartRequest(t, "audio", []byte("webm")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Server error","details":"ffmpeg wrapper bug"}`, rec.Body.String())
	env.assertScratchEmpty(t)
}

func TestIndex(t *testing.T) {
	env := newTestEnv(t, &fakeTranscoder{}, &fakeSTT{})

	rec := serve(env.router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"VoxBoard backend is up and running!"}`, rec.Body.String())
}

func TestListCommands(t *testing.T) {
	env := newTestEnv(t, &fakeTranscoder{}, &fakeSTT{})

	rec := serve(env.router, httptest.NewRequest(http.MethodGet, "/commands", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `{"phrase":"circle","action":"draw_circle"}`)
	assert.Contains(t, rec.Body.String(), `{"phrase":"zoom in","action":"zoom_in"}`)
}

func TestCORS(t *testing.T) {
	env := newTestEnv(t, &fakeTranscoder{}, &fakeSTT{})

	req := httptest.NewRequest(http.MethodOptions, "/process-command", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := serve(env.router, req)

	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://whiteboard.example")
	rec = serve(env.router, req)

	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
