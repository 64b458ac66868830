package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"shotdiff/internal/protoobject"
	"shotdiff/internal/reportv1"
	"shotdiff/internal/service"
	"shotdiff/internal/store"
)

const maxBodyBytes = 32 << 20

func (a *API) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) schema(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, reportv1.Schema())
}

func (a *API) listReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("limit: %v", err))
			return
		}
		limit = n
	}
	reports, err := a.svc.ListReports(r.Context(), q.Get("project"), limit)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, &reportv1.ListReportsResponse{Reports: reports})
}

func (a *API) putReport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	var report reportv1.ReportData
	if err := report.UnmarshalJSON(body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sum, err := a.svc.PutReport(r.Context(), &report)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, sum)
}

func (a *API) getReport(w http.ResponseWriter, r *http.Request) {
	report, err := a.svc.GetReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, report)
}

func (a *API) getReportObject(w http.ResponseWriter, r *http.Request) {
	opts, err := objectOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	report, err := a.svc.GetReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report.ToObject(opts))
}

func (a *API) deleteReport(w http.ResponseWriter, r *http.Request) {
	deleted, err := a.svc.DeleteReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

type verifyResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func (a *API) verify(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "message")
	if _, ok := reportv1.MessageDescriptor(name); !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown message %q", name))
		return
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	var obj any
	if err := dec.Decode(&obj); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decode body: %v", err))
		return
	}
	if err := reportv1.VerifyNamed(name, obj); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, verifyResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, verifyResponse{Valid: true})
}

// objectOptions reads ToObject options from the query string. NaN and
// infinities are always written as strings since JSON has no literal for
// them.
func objectOptions(r *http.Request) (protoobject.Options, error) {
	q := r.URL.Query()
	opts := protoobject.Options{JSON: true}

	flags := []struct {
		key string
		dst *bool
	}{
		{"defaults", &opts.Defaults},
		{"arrays", &opts.Arrays},
		{"objects", &opts.Objects},
		{"oneofs", &opts.Oneofs},
		{"proto_names", &opts.UseProtoNames},
	}
	for _, f := range flags {
		raw := strings.TrimSpace(q.Get(f.key))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("%s: %q is not a boolean", f.key, raw)
		}
		*f.dst = v
	}

	switch v := strings.ToLower(strings.TrimSpace(q.Get("enums"))); v {
	case "", "number":
	case "string":
		opts.Enums = protoobject.EnumsAsStrings
	default:
		return opts, fmt.Errorf("enums: want string or number, got %q", v)
	}
	switch v := strings.ToLower(strings.TrimSpace(q.Get("longs"))); v {
	case "", "number":
	case "string":
		opts.Longs = protoobject.LongsAsStrings
	default:
		return opts, fmt.Errorf("longs: want string or number, got %q", v)
	}
	return opts, nil
}

func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		a.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// writeMessage uses the canonical protobuf JSON mapping.
func writeMessage(w http.ResponseWriter, status int, m reportv1.Message) {
	b, err := m.MarshalJSON()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
