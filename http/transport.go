package http

import (
	"embed"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-kit/log"
	"go-currency-converter"
	"go-currency-converter/exchange"
	"html/template"
	"net/http"
)

//go:embed templates/index.html
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/index.html"))

// Server dependencies for HTTP Server functions
type Server struct {
	Service exchange.Service
	Logger  log.Logger
	metrics http.Handler
	router  chi.Router
}

// NewServer builds a Server. metrics is served on /metrics unless nil.
func NewServer(s exchange.Service, metrics http.Handler, logger log.Logger) *Server {
	server := &Server{
		Service: s,
		Logger:  logger,
		metrics: metrics,
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Get("/", s.index())
	r.Post("/", s.submit())
	r.Route("/api", func(r chi.Router) {
		r.Get("/currencies", s.currencies())
		r.Post("/convert", s.convert())
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	s.router = r
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// form state of the converter page
type form struct {
	Currencies []converter.Currency
	From       converter.Currency
	To         converter.Currency
	Amount     string
	Output     string
	Error      string
}

func newForm() form {
	return form{
		Currencies: converter.Currencies,
		From:       converter.Currencies[0],
		To:         converter.Currencies[0],
	}
}

// index renders the empty converter page
func (s *Server) index() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		s.render(rw, http.StatusOK, newForm())
	}
}

// submit handles the Convert button
func (s *Server) submit() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		f := newForm()
		if err := r.ParseForm(); err != nil {
			f.Error = "invalid form"
			s.render(rw, http.StatusBadRequest, f)
			return
		}
		f.From = converter.ParseCurrency(r.PostForm.Get("from"))
		f.To = converter.ParseCurrency(r.PostForm.Get("to"))
		f.Amount = r.PostForm.Get("amount")

		amount, err := exchange.ParseAmount(f.Amount)
		if err != nil {
			f.Error = errorMessage(err)
			s.render(rw, statusOf(err), f)
			return
		}

		result, err := s.Service.Convert(r.Context(), amount, f.From, f.To)
		if err != nil {
			f.Error = errorMessage(err)
			s.render(rw, statusOf(err), f)
			return
		}

		f.Output = exchange.Format(result)
		s.render(rw, http.StatusOK, f)
	}
}

func (s *Server) render(rw http.ResponseWriter, status int, f form) {
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	rw.WriteHeader(status)
	if err := page.Execute(rw, f); err != nil {
		s.Logger.Log("msg", "rendering page", "err", err)
	}
}

// currencies lists the currencies offered for conversion
func (s *Server) currencies() http.HandlerFunc {
	type response struct {
		Currencies []converter.Currency `json:"currencies"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		s.writeJSON(rw, http.StatusOK, response{Currencies: converter.Currencies})
	}
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency string
		ToCurrency   string
		Amount       json.Number
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Exchange converter.Rate   `json:"exchange"`
		Amount   converter.Amount `json:"amount"`
		Original converter.Amount `json:"original"`
		Display  string           `json:"display"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var request request
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			s.writeError(rw, http.StatusBadRequest, "invalid json")
			return
		}

		// a missing or null amount decodes to "" and is rejected here
		amount, err := exchange.ParseAmount(request.Amount.String())
		if err != nil {
			s.writeError(rw, statusOf(err), errorMessage(err))
			return
		}

		from := converter.ParseCurrency(request.FromCurrency)
		to := converter.ParseCurrency(request.ToCurrency)
		result, err := s.Service.Convert(r.Context(), amount, from, to)
		if err != nil {
			s.writeError(rw, statusOf(err), errorMessage(err))
			return
		}

		s.writeJSON(rw, http.StatusOK, response{
			Exchange: result.Rate,
			Amount:   result.Amount,
			Original: amount,
			Display:  exchange.Format(result),
		})
	}
}

// writeJSON encodes v before anything is written, so an unencodable value
// (e.g. an infinite amount) becomes a 500 instead of an empty 200.
func (s *Server) writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		s.Logger.Log("msg", "encoding json response", "err", err)
		status = http.StatusInternalServerError
		body = []byte(`{"error":"failed json encoding"}`)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(append(body, '\n'))
}

func (s *Server) writeError(rw http.ResponseWriter, status int, msg string) {
	s.writeJSON(rw, status, map[string]string{"error": msg})
}

// statusOf maps a conversion failure to an HTTP status
func statusOf(err error) int {
	var ae *converter.AmountError
	var fe *converter.FetchError
	switch {
	case errors.As(err, &ae), errors.Is(err, converter.ErrUnsupportedCurrency):
		return http.StatusBadRequest
	case errors.As(err, &fe):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage the text shown to users in place of the result
func errorMessage(err error) string {
	var ae *converter.AmountError
	switch {
	case errors.As(err, &ae):
		return "amount must be a number"
	case errors.Is(err, converter.ErrUnsupportedCurrency):
		return "unsupported currency"
	}

	switch converter.FetchErrorKindOf(err) {
	case converter.KindNetwork:
		return "exchange rate service unreachable"
	case converter.KindStatus:
		return "exchange rate service unavailable"
	case converter.KindParse, converter.KindFormat:
		return "exchange rate not understood"
	}
	return "failed conversion"
}
