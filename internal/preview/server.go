package preview

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/loomui-dev/loom/pkg/render"
	"github.com/loomui-dev/loom/pkg/ui"
)

//go:embed docs.md
var docsMarkdown []byte

// Server is the preview HTTP server.
type Server struct {
	cfg      Config
	log      zerolog.Logger
	renderer *render.Renderer
	reloader *Reloader
	metrics  *Metrics
	registry *prometheus.Registry
	tracer   trace.Tracer

	mu           sync.RWMutex
	kit          *ui.Kit
	overridesMod time.Time

	httpServer *http.Server
}

// NewServer builds a preview server from the given configuration.
func NewServer(cfg Config, log zerolog.Logger) (*Server, error) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	s := &Server{
		cfg:      cfg,
		log:      log,
		renderer: render.NewRenderer(render.RendererConfig{Pretty: cfg.Pretty}),
		reloader: NewReloader(),
		metrics:  metrics,
		registry: registry,
		tracer:   otel.Tracer("loom/preview"),
	}
	s.reloader.OnClientChange(func(clients int) {
		metrics.reloadClients.Set(float64(clients))
	})

	if err := s.rebuildKit(); err != nil {
		return nil, err
	}
	return s, nil
}

// Kit returns the currently previewed kit.
func (s *Server) Kit() *ui.Kit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kit
}

// rebuildKit constructs a fresh kit from the override file, if configured.
func (s *Server) rebuildKit() error {
	opts := []ui.KitOption{}
	var mod time.Time

	if s.cfg.Overrides != "" {
		info, err := os.Stat(s.cfg.Overrides)
		if err != nil {
			return fmt.Errorf("preview: overrides file: %w", err)
		}
		mod = info.ModTime()

		overrides, err := ui.LoadOverridesFile(s.cfg.Overrides)
		if err != nil {
			return err
		}
		opts = append(opts, ui.WithOverrides(overrides))
	}

	s.mu.Lock()
	s.kit = ui.NewKit(opts...)
	s.overridesMod = mod
	s.mu.Unlock()
	return nil
}

// Handler returns the preview router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/preview/{name}", s.handlePreview)
	r.Get("/docs", s.handleDocs)
	r.Get("/reload", s.reloader.HandleWebSocket)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// ListenAndServe runs the server until the context is canceled. When an
// overrides file is configured it is polled for changes; each change
// rebuilds the kit and reloads connected browsers.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if s.cfg.Overrides != "" {
		go s.watchOverrides(ctx)
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	s.log.Info().Str("addr", s.cfg.Addr).Msg("preview server listening")
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// watchOverrides polls the override file's mtime and rebuilds on change.
func (s *Server) watchOverrides(ctx context.Context) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		info, err := os.Stat(s.cfg.Overrides)
		if err != nil {
			continue
		}
		s.mu.RLock()
		changed := info.ModTime().After(s.overridesMod)
		s.mu.RUnlock()
		if !changed {
			continue
		}

		if err := s.rebuildKit(); err != nil {
			s.log.Warn().Err(err).Msg("override reload failed")
			continue
		}
		s.metrics.reloadsTotal.Inc()
		s.reloader.NotifyReload(s.cfg.Overrides)
		s.log.Info().
			Str("file", s.cfg.Overrides).
			Int("clients", s.reloader.ClientCount()).
			Msg("overrides reloaded")
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var body bytes.Buffer
	for _, demo := range Demos() {
		fmt.Fprintf(&body, `<li><a class="text-indigo-600 hover:underline" href="/preview/%s">%s</a></li>`+"\n",
			demo.Name, demo.Title)
	}

	s.writePage(w, "Components", fmt.Sprintf(`
		<h1 class="text-2xl font-semibold mb-6">Loom components</h1>
		<ul class="space-y-2">%s</ul>
		<p class="mt-8 text-sm text-zinc-500"><a class="hover:underline" href="/docs">Documentation</a></p>`,
		body.String()))
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	demo, ok := FindDemo(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	html, err := s.renderDemo(r.Context(), demo)
	if err != nil {
		s.log.Error().Err(err).Str("component", name).Msg("render failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.writePage(w, demo.Title, fmt.Sprintf(`
		<p class="mb-6 text-sm text-zinc-500"><a class="hover:underline" href="/">&larr; All components</a></p>
		<h1 class="text-2xl font-semibold mb-6">%s</h1>
		<div class="rounded-xl border border-zinc-200 p-8">%s</div>`,
		demo.Title, html))
}

// renderDemo resolves and renders one demo inside a trace span.
func (s *Server) renderDemo(ctx context.Context, demo Demo) (string, error) {
	_, span := s.tracer.Start(ctx, "preview.render",
		trace.WithAttributes(attribute.String("component", demo.Name)))
	defer span.End()

	start := time.Now()
	node, err := demo.Render(s.Kit())
	var html string
	if err == nil {
		html, err = s.renderer.RenderToString(node)
	}
	s.metrics.ObserveRender(demo.Name, time.Since(start), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return html, nil
}

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := goldmark.Convert(docsMarkdown, &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writePage(w, "Documentation", fmt.Sprintf(
		`<div class="prose prose-zinc max-w-none">%s</div>`, buf.String()))
}

// writePage wraps content in the shared page shell: Tailwind for styling
// and the live-reload client.
func (s *Server) writePage(w http.ResponseWriter, title, content string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s · Loom</title>
<script src="https://cdn.tailwindcss.com"></script>
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/reload");
  ws.onmessage = function () { location.reload(); };
})();
</script>
</head>
<body class="bg-white text-zinc-900">
<main class="mx-auto max-w-3xl px-6 py-12">%s</main>
</body>
</html>`, title, content)
}
