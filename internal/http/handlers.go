package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fairyhunter13/retail-catalog-service/internal/catalog"
	"github.com/fairyhunter13/retail-catalog-service/internal/config"
	httpopenapi "github.com/fairyhunter13/retail-catalog-service/internal/http/openapi"
	"github.com/fairyhunter13/retail-catalog-service/internal/loader"
	"github.com/fairyhunter13/retail-catalog-service/internal/model"
	"github.com/fairyhunter13/retail-catalog-service/internal/obs"
	"github.com/fairyhunter13/retail-catalog-service/internal/store"
)

type App struct {
	Cfg     config.Config
	Store   *store.Store
	Reg     *catalog.Registry
	Confirm catalog.ConfirmPolicy
	started time.Time
}

func NewApp(cfg config.Config, st *store.Store, reg *catalog.Registry, confirm catalog.ConfirmPolicy) *App {
	return &App{Cfg: cfg, Store: st, Reg: reg, Confirm: confirm, started: time.Now()}
}

type productView struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Value       float64 `json:"value"`
	Display     string  `json:"display"`
}

func viewProduct(p store.ProductSnapshot) productView {
	return productView{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Value:       p.Value,
		Display:     p.Display,
	}
}

type categoryView struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	TotalQuantity int      `json:"total_quantity"`
	Total         float64  `json:"total"`
	AveragePrice  float64  `json:"average_price"`
	Display       string   `json:"display"`
	Listing       []string `json:"listing,omitempty"`
}

func viewCategory(c store.CategorySnapshot) categoryView {
	return categoryView{
		Name:          c.Name,
		Description:   c.Description,
		TotalQuantity: c.TotalQuantity,
		Total:         c.Total,
		AveragePrice:  c.AveragePrice,
		Display:       c.Display,
		Listing:       c.Listing,
	}
}

type orderView struct {
	ID       string  `json:"id"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
	Display  string  `json:"display"`
}

func viewOrder(o store.OrderSnapshot) orderView {
	return orderView{
		ID:       o.ID,
		Product:  o.Product,
		Quantity: o.Quantity,
		Total:    o.Total,
		Display:  o.Display,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

func (a *App) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	cats := a.Store.Categories()
	out := make([]categoryView, 0, len(cats))
	for _, c := range cats {
		out = append(out, viewCategory(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// categoryHandler serves GET /categories/{name} and
// POST /categories/{name}/products.
func (a *App) categoryHandler(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/categories/")
	if rest == "" {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	if name, ok := strings.CutSuffix(rest, "/products"); ok {
		a.addProductToCategory(w, r, name)
		return
	}
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	c, ok := a.Store.Category(rest)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, viewCategory(c))
}

func (a *App) addProductToCategory(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	var rec model.ProductRecord
	if !decodeJSON(w, r, &rec) {
		return
	}
	if rec.Name == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "name is required")
		return
	}
	p, err := catalog.NewProduct(rec.Name, rec.Description, rec.Price, rec.Quantity)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	snap, err := a.Store.AddToCategory(name, p)
	switch {
	case errors.Is(err, store.ErrNoCategory):
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	case errors.Is(err, catalog.ErrTypeMismatch):
		WriteJSONError(w, http.StatusBadRequest, "type_mismatch", err.Error())
		return
	case err != nil:
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	obs.Logger.Info("product_added",
		"request_id", RequestIDFromContext(r.Context()),
		"category", name,
		"product", snap.Name,
	)
	writeJSON(w, http.StatusCreated, viewProduct(snap))
}

// mergeProductHandler runs the merge-or-create factory over the shared
// product universe.
func (a *App) mergeProductHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	var rec model.ProductRecord
	if !decodeJSON(w, r, &rec) {
		return
	}
	if rec.Name == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "name is required")
		return
	}
	p, created, err := a.Store.MergeProduct(rec, a.Confirm)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, struct {
		productView
		Created bool `json:"created"`
	}{viewProduct(p), created})
}

// productHandler serves GET /products/{name} and
// PATCH /products/{name}/price.
func (a *App) productHandler(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/products/")
	if rest == "" {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	if name, ok := strings.CutSuffix(rest, "/price"); ok {
		a.updatePrice(w, r, name)
		return
	}
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	p, ok := a.Store.Product(rest)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, viewProduct(p))
}

func (a *App) updatePrice(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPatch {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	var req struct {
		Price float64 `json:"price"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	price, ok := a.Store.UpdatePrice(name, req.Price, a.Confirm)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	// A rejected price is not an error: the response simply reports the
	// price still in effect.
	writeJSON(w, http.StatusOK, struct {
		Name    string  `json:"name"`
		Price   float64 `json:"price"`
		Applied bool    `json:"applied"`
	}{name, price, price == req.Price})
}

// combineHandler adds up the values of two same-variant products.
func (a *App) combineHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	var req struct {
		A string `json:"a"`
		B string `json:"b"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	total, err := a.Store.CombineProducts(req.A, req.B)
	switch {
	case errors.Is(err, store.ErrNoProduct):
		WriteJSONError(w, http.StatusNotFound, "not_found", err.Error())
		return
	case err != nil:
		WriteJSONError(w, http.StatusBadRequest, "type_mismatch", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"a": req.A, "b": req.B, "total": total})
}

func (a *App) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	var req struct {
		Product  string `json:"product"`
		Quantity int    `json:"quantity"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	o, ok := a.Store.CreateOrder(req.Product, req.Quantity)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", req.Product)
		return
	}
	obs.Logger.Info("order_created",
		"request_id", RequestIDFromContext(r.Context()),
		"order_id", o.ID,
		"product", o.Product,
		"quantity", o.Quantity,
		"total", o.Total,
	)
	writeJSON(w, http.StatusCreated, viewOrder(o))
}

func (a *App) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/orders/")
	o, ok := a.Store.Order(id)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, viewOrder(o))
}

// reloadHandler re-runs the catalog loader, replacing the stored catalog
// on success. Loader error kinds map to distinct statuses.
func (a *App) reloadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	path := a.Cfg.CatalogPath
	if r.ContentLength != 0 {
		var req struct {
			Path string `json:"path"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Path != "" {
			path = req.Path
		}
	}
	cats, err := loader.Load(path, a.Reg)
	var missing *loader.MissingFieldError
	switch {
	case errors.Is(err, loader.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "not_found", err.Error())
		return
	case errors.Is(err, loader.ErrFormat):
		WriteJSONError(w, http.StatusBadRequest, "format_error", err.Error())
		return
	case errors.As(err, &missing):
		WriteJSONError(w, http.StatusUnprocessableEntity, "missing_field", missing.Field)
		return
	case err != nil:
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	a.Store.ReplaceCatalog(cats)
	obs.Logger.Info("catalog_loaded",
		"request_id", RequestIDFromContext(r.Context()),
		"path", path,
		"categories", len(cats),
	)
	writeJSON(w, http.StatusOK, map[string]any{"status": "loaded", "categories": len(cats)})
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	cats := a.Store.Categories()
	m := map[string]any{
		"categories":     len(cats),
		"category_count": a.Reg.CategoryCount(),
		"product_count":  a.Reg.ProductCount(),
		"uptime_sec":     time.Since(a.started).Seconds(),
	}
	writeJSON(w, http.StatusOK, m)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
