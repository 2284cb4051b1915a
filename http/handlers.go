package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/text/message"

	"irisform/form"
	"irisform/i18n"
	"irisform/ml"
)

//go:embed templates/*.html
var templateFS embed.FS

var views = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// LabelClassifier 将四个测量值分类为标签
type LabelClassifier interface {
	Classify(features []float64) (int, error)
}

// Handler 表单处理器
type Handler struct {
	classifier LabelClassifier
	logger     *zap.Logger
}

// NewHandler 创建表单处理器。classifier 在进程启动时加载一次，之后只读
func NewHandler(classifier LabelClassifier, logger *zap.Logger) *Handler {
	return &Handler{
		classifier: classifier,
		logger:     logger,
	}
}

// RegisterHandlers 注册路由
func RegisterHandlers(mux *http.ServeMux, h *Handler) {
	mux.Handle("/{$}", h)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	loc := newLocale(r.Header.Get("Accept-Language"))

	switch r.Method {
	case http.MethodGet:
		h.render(w, r, http.StatusOK, "index.html", newFormPage(loc, nil, nil))
	case http.MethodPost:
		h.handlePredict(w, r, loc)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request, loc locale) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("invalid form body",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err),
		)
		h.render(w, r, http.StatusBadRequest, "error.html", newErrorPage(loc, "The request could not be read."))
		return
	}

	measurement, errs := form.Parse(r.PostForm)
	if len(errs) > 0 {
		h.render(w, r, http.StatusOK, "index.html", newFormPage(loc, r.PostForm, errs))
		return
	}

	label, err := h.classifier.Classify(measurement.Vector())
	if err != nil {
		h.logger.Error("classification failed",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err),
		)
		h.render(w, r, http.StatusInternalServerError, "error.html",
			newErrorPage(loc, "Classification failed. Please try again later."))
		return
	}

	species := ml.SpeciesName(label)
	if species == ml.UnknownSpecies {
		h.logger.Warn("model returned unknown label",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Int("label", label),
		)
	}
	h.render(w, r, http.StatusOK, "result.html", newResultPage(loc, species))
}

// render 先渲染到缓冲区，模板出错时不会写出半个页面
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data page) {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("render template failed",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.String("template", name),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// page 模板数据
type page struct {
	Lang    string
	Title   string
	Intro   string
	Submit  string
	Fields  []fieldView
	Heading string
	Lead    string
	Species string
	Back    string
	Message string
}

type fieldView struct {
	Name  string
	Label string
	Value string
	Error string
}

// locale 请求语言
type locale struct {
	lang string
	p    *message.Printer
}

func newLocale(acceptLanguage string) locale {
	tag := i18n.Match(acceptLanguage)
	return locale{lang: tag.String(), p: message.NewPrinter(tag)}
}

func basePage(loc locale) page {
	return page{
		Lang:  loc.lang,
		Title: loc.p.Sprintf("Iris classifier"),
		Back:  loc.p.Sprintf("Back"),
	}
}

func newFormPage(loc locale, values url.Values, errs form.Errors) page {
	p := loc.p
	data := basePage(loc)
	data.Intro = p.Sprintf("Enter the measurements of the flower.")
	data.Submit = p.Sprintf("Classify")
	for _, field := range form.Fields {
		view := fieldView{
			Name:  field.Name,
			Label: p.Sprintf(field.Label),
			Value: values.Get(field.Name),
		}
		if fe, ok := errs[field.Name]; ok {
			view.Error = fe.Message(p)
		}
		data.Fields = append(data.Fields, view)
	}
	return data
}

func newResultPage(loc locale, species string) page {
	data := basePage(loc)
	data.Heading = loc.p.Sprintf("Result")
	data.Lead = loc.p.Sprintf("The flower is")
	data.Species = species
	return data
}

func newErrorPage(loc locale, key string) page {
	data := basePage(loc)
	data.Message = loc.p.Sprintf(key)
	return data
}
