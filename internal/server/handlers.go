package server

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mrsinham/fracticon"
	"github.com/mrsinham/fracticon/internal/digest"
	"github.com/mrsinham/fracticon/internal/sheet"
)

const (
	formatPNG = "png"
	formatSVG = "svg"

	maxSheetInputs = 64
)

// handleAvatar serves GET /avatar/{input}. A ".png" or ".svg" suffix
// on input picks the format (PNG by default) and query parameters map
// to generation options. Output is deterministic, so responses are
// immutable and the cache key doubles as ETag.
func (s *Server) handleAvatar(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, "input")
	format := formatPNG
	if trimmed, ok := strings.CutSuffix(input, ".svg"); ok {
		input, format = trimmed, formatSVG
	} else if trimmed, ok := strings.CutSuffix(input, ".png"); ok {
		input = trimmed
	}
	if input == "" {
		s.fail(w, format, http.StatusBadRequest, "empty input")
		return
	}

	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		s.fail(w, format, http.StatusBadRequest, err.Error())
		return
	}

	key := cacheKey(input, format, opts)
	etag := `"` + key + `"`
	if r.Header.Get("If-None-Match") == etag {
		s.metrics.requests.WithLabelValues(format, "304").Inc()
		w.WriteHeader(http.StatusNotModified)
		return
	}

	body, err := s.lookupOrRender(r.Context(), key, input, format, opts)
	if err != nil {
		status := http.StatusInternalServerError
		if isOptionError(err) {
			status = http.StatusBadRequest
		}
		s.fail(w, format, status, err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	s.metrics.requests.WithLabelValues(format, "200").Inc()
	w.Write(body)
}

// handleSheet serves GET /sheet?inputs=a,b,c as one labeled PNG grid.
// Sheets are not cached; the interesting keys are the per-avatar ones.
func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var inputs []string
	for _, in := range strings.Split(q.Get("inputs"), ",") {
		if in = strings.TrimSpace(in); in != "" {
			inputs = append(inputs, in)
		}
	}
	if len(inputs) == 0 {
		s.fail(w, formatPNG, http.StatusBadRequest, "missing inputs")
		return
	}
	if len(inputs) > maxSheetInputs {
		s.fail(w, formatPNG, http.StatusBadRequest,
			fmt.Sprintf("too many inputs: %d (max %d)", len(inputs), maxSheetInputs))
		return
	}

	opts, err := optionsFromQuery(q)
	if err != nil {
		s.fail(w, formatPNG, http.StatusBadRequest, err.Error())
		return
	}
	cols, err := intParam(q, "cols")
	if err != nil {
		s.fail(w, formatPNG, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	body, err := sheet.Render(inputs, opts, cols)
	if err != nil {
		status := http.StatusInternalServerError
		if isOptionError(err) {
			status = http.StatusBadRequest
		}
		s.fail(w, formatPNG, status, err.Error())
		return
	}
	s.metrics.renderSeconds.Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", contentType(formatPNG))
	s.metrics.requests.WithLabelValues(formatPNG, "200").Inc()
	w.Write(body)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// lookupOrRender serves one avatar, consulting the cache first. Cache
// failures log and fall through to rendering; a broken cache must not
// take the endpoint down.
func (s *Server) lookupOrRender(ctx context.Context, key, input, format string, opts *fracticon.Options) ([]byte, error) {
	if s.cache != nil {
		body, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Error("cache get", "key", key, "error", err)
		} else if ok {
			s.metrics.cacheHits.Inc()
			return body, nil
		}
	}
	s.metrics.cacheMisses.Inc()

	start := time.Now()
	var body []byte
	var err error
	if format == formatSVG {
		body, err = fracticon.GenerateSVG(input, opts)
	} else {
		body, err = fracticon.Generate(input, opts)
	}
	if err != nil {
		return nil, err
	}
	s.metrics.renderSeconds.Observe(time.Since(start).Seconds())

	if s.cache != nil {
		if err := s.cache.Put(ctx, key, format, body); err != nil {
			s.logger.Error("cache put", "key", key, "error", err)
		}
	}
	return body, nil
}

func (s *Server) fail(w http.ResponseWriter, format string, status int, msg string) {
	s.metrics.requests.WithLabelValues(format, strconv.Itoa(status)).Inc()
	http.Error(w, msg, status)
}

// cacheKey hashes the full request identity: input plus every option
// that changes the output bytes.
func cacheKey(input, format string, o *fracticon.Options) string {
	constant := ""
	if o.Constant != nil {
		constant = fmt.Sprintf("%g,%g", o.Constant.Re, o.Constant.Im)
	}
	id := fmt.Sprintf("%s|%s|%d|%d|%v|%s|%s|%s|%s|%d",
		input, format, o.Size, o.GridSize, o.Circular,
		o.Family, o.Preset, constant, o.Palette, o.NumColors)
	sum := digest.Sum([]byte(id))
	return hex.EncodeToString(sum[:])
}

func optionsFromQuery(q url.Values) (*fracticon.Options, error) {
	o := &fracticon.Options{
		Family:  q.Get("family"),
		Preset:  q.Get("preset"),
		Palette: q.Get("palette"),
	}
	var err error
	if o.Size, err = intParam(q, "size"); err != nil {
		return nil, err
	}
	if o.GridSize, err = intParam(q, "grid"); err != nil {
		return nil, err
	}
	if o.NumColors, err = intParam(q, "colors"); err != nil {
		return nil, err
	}
	if v := q.Get("circle"); v != "" {
		o.Circular, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid circle: %s (want true or false)", v)
		}
	}
	if v := q.Get("constant"); v != "" {
		c, err := fracticon.ParseConstant(v)
		if err != nil {
			return nil, err
		}
		o.Constant = &c
	}
	return o, nil
}

func intParam(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s (want an integer)", name, v)
	}
	return n, nil
}

func contentType(format string) string {
	if format == formatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func isOptionError(err error) bool {
	return errors.Is(err, fracticon.ErrUnknownFamily) ||
		errors.Is(err, fracticon.ErrUnknownPreset) ||
		errors.Is(err, fracticon.ErrBadSize) ||
		errors.Is(err, fracticon.ErrBadGridSize) ||
		errors.Is(err, fracticon.ErrInvalidHex)
}
