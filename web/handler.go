package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lore-clans/book"
	"lore-clans/catalog"
	"lore-clans/epub"
	"lore-clans/template"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler serves the menu, the transition overlay, the books and their assets.
type Handler struct {
	shell   *Shell
	library *catalog.Library
	assets  fs.FS
	logger  *slog.Logger
}

// NewHandler builds the HTTP handler. assets is the asset root served under
// /assets and read when packing books.
func NewHandler(library *catalog.Library, assets fs.FS, defaultVolume float64, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		shell:   NewShell(library, defaultVolume),
		library: library,
		assets:  assets,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/assets/*", http.StripPrefix("/assets", http.FileServer(http.FS(filesOnly{assets}))))
	r.Get("/static/{name}", h.static)

	r.Get("/", h.home)
	r.Get("/transition/{village}/{clan}", h.transition)
	r.Get("/api/clans/{clan}", h.apiClan)
	r.Get("/api/book/state", h.apiBookState)
	r.Get("/{clan}", h.book)
	r.NotFound(h.notFound)
	return r
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, template.Error(template.ErrorView{
		Status:  http.StatusNotFound,
		Message: "Ce parchemin n'existe pas.",
	}))
}

func (h *Handler) static(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	switch {
	case name == "style.css":
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		_, _ = w.Write([]byte(template.SiteCSS))
	case name == "player.js":
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		_, _ = w.Write([]byte(template.PlayerJS))
	default:
		svg, ok := template.Logos[name]
		if !ok {
			h.notFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write([]byte(svg))
	}
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	view := h.shell.Home(r.URL.Query().Get("village"))
	h.render(w, r, http.StatusOK, template.Home(view))
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request) {
	view, err := h.shell.Transition(chi.URLParam(r, "clan"))
	if err != nil {
		h.notFound(w, r)
		return
	}
	h.render(w, r, http.StatusOK, template.Transition(view))
}

func (h *Handler) book(w http.ResponseWriter, r *http.Request) {
	clanID := chi.URLParam(r, "clan")
	if id, ok := strings.CutSuffix(clanID, ".epub"); ok {
		h.epub(w, r, id)
		return
	}
	view, err := h.shell.Book(clanID, r.URL.Query())
	if errors.Is(err, catalog.ErrUnknownClan) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.Debug("book view", "clan", clanID, "state", view.State, "pages", view.PageCount)
	h.render(w, r, http.StatusOK, template.Book(view))
}

func (h *Handler) epub(w http.ResponseWriter, r *http.Request, clanID string) {
	set, err := h.library.Book(clanID)
	if errors.Is(err, catalog.ErrUnknownClan) || (err == nil && set.Empty()) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	clan, village, _ := h.library.Clan(clanID)

	var buf bytes.Buffer
	err = epub.WriteEpub(&buf, epub.Book{Title: clan.Name, Village: village.Name, Set: set}, h.assets)
	if err != nil {
		h.fail(w, r, fmt.Errorf("pack %s: %w", clanID, err))
		return
	}
	w.Header().Set("Content-Type", "application/epub+zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.epub"`, set.ClanID))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

func (h *Handler) apiClan(w http.ResponseWriter, r *http.Request) {
	set, err := h.library.Book(chi.URLParam(r, "clan"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, set)
}

type bookStateResponse struct {
	Page  int               `json:"page"`
	Total *int              `json:"total"`
	State book.DisplayState `json:"state"`
}

// apiBookState exposes the flip rule for client-side renderers. An absent or
// empty total is unknown.
func (h *Handler) apiBookState(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "page must be an integer"})
		return
	}
	resp := bookStateResponse{Page: page}
	total := book.UnknownTotal
	if raw := q.Get("total"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "total must be an integer"})
			return
		}
		total = book.KnownTotal(n)
		if known, ok := total.Get(); ok {
			resp.Total = &known
		}
	}
	resp.State = book.OnPageChange(page, total)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed", "path", r.URL.Path, "error", err)
	h.render(w, r, http.StatusInternalServerError, template.Error(template.ErrorView{
		Status:  http.StatusInternalServerError,
		Message: "Le grimoire est illisible.",
	}))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// filesOnly hides directories so /assets never lists the asset root.
type filesOnly struct {
	fs.FS
}

func (f filesOnly) Open(name string) (fs.File, error) {
	file, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return file, nil
}
