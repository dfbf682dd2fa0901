package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/phrases"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pipeline"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/testhelpers"
)

func TestServer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Server Suite")
}

func newRouter(annotator *testhelpers.FakeAnnotator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	_, router := gin.CreateTestContext(httptest.NewRecorder())
	s := server{controller: controller{
		pipeline: pipeline.New(annotator),
		defaults: phrases.New("alltid", "nog"),
	}}
	s.RegisterRoutes(router)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder, target interface{}) {
	Ω(json.Unmarshal(w.Body.Bytes(), target)).Should(Succeed())
}

var _ = Describe("Analyse", func() {
	var router *gin.Engine
	var annotator *testhelpers.FakeAnnotator

	BeforeEach(func() {
		annotator = &testhelpers.FakeAnnotator{Tags: map[string]pos.Tag{"han": pos.PRON}}
		router = newRouter(annotator)
	})

	It("Should mark forbidden words from a json body", func() {
		body, _ := json.Marshal(lib.AnalyseRequest{
			InputText:      "Han var alltid nog trött.\n\nHan log.",
			ShowClass:      "forbidden",
			ForbiddenWords: "alltid, nog",
		})
		req := httptest.NewRequest(http.MethodPost, "/analyse", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := serve(router, req)
		Ω(w.Code).Should(Equal(http.StatusOK))

		var res AnalyseResponse
		decode(w, &res)
		Ω(res.Stats.Count).Should(Equal(2))
		Ω(res.Stats.Total).Should(Equal(7))
		Ω(res.Stats.Percentage).Should(Equal(28.6))
		Ω(res.Result).Should(ContainSubstring(`<span class="forbidden">alltid</span>`))
		Ω(strings.Count(res.Result, "<br>")).Should(Equal(3))
		Ω(res.ForbiddenWords).Should(Equal("alltid, nog"))
		Ω(res.Lines).Should(HaveLen(3))
		Ω(res.Lines[1].Blank).Should(BeTrue())
	})

	It("Should accept a form body and use the default list", func() {
		form := url.Values{"input_text": {"Nog är det alltid så."}, "show_class": {"forbidden"}}
		req := httptest.NewRequest(http.MethodPost, "/analyse", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := serve(router, req)
		Ω(w.Code).Should(Equal(http.StatusOK))

		var res AnalyseResponse
		decode(w, &res)
		Ω(res.Stats.Count).Should(Equal(2))
		Ω(res.Result).Should(HavePrefix(`<span class="forbidden">Nog</span>`))
	})

	It("Should be a bad request when the class is unknown", func() {
		req := httptest.NewRequest(http.MethodPost, "/analyse", strings.NewReader(`{"input_text": "Han log.", "show_class": "substantiv"}`))
		req.Header.Set("Content-Type", "application/json")

		w := serve(router, req)
		Ω(w.Code).Should(Equal(http.StatusBadRequest))

		var res map[string]interface{}
		decode(w, &res)
		Ω(res["status"]).Should(Equal(float64(400)))
		Ω(res["message"]).Should(ContainSubstring("substantiv"))
	})

	It("Should be a bad request when the class is missing", func() {
		req := httptest.NewRequest(http.MethodPost, "/analyse", strings.NewReader(`{"input_text": "Han log."}`))
		req.Header.Set("Content-Type", "application/json")

		Ω(serve(router, req).Code).Should(Equal(http.StatusBadRequest))
	})

	It("Should be an internal server error when the annotator fails", func() {
		annotator.Err = errors.New("tagger down")
		req := httptest.NewRequest(http.MethodPost, "/analyse", strings.NewReader(`{"input_text": "Han log.", "show_class": "verb"}`))
		req.Header.Set("Content-Type", "application/json")

		w := serve(router, req)
		Ω(w.Code).Should(Equal(http.StatusInternalServerError))
		Ω(w.Body.String()).Should(ContainSubstring("tagger down"))
	})
})

var _ = Describe("AnalyseRaw", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = newRouter(&testhelpers.FakeAnnotator{Tags: map[string]pos.Tag{"han": pos.PRON}})
	})

	It("Should analyse html bodies", func() {
		req := httptest.NewRequest(http.MethodPost, "/analyse/raw?show_class=pronomen", strings.NewReader("<p>Han log.</p><p>Sedan gick han.</p>"))
		req.Header.Set("Content-Type", "text/html; charset=utf-8")

		w := serve(router, req)
		Ω(w.Code).Should(Equal(http.StatusOK))

		var res AnalyseResponse
		decode(w, &res)
		Ω(res.Stats.Count).Should(Equal(2))
		Ω(res.Lines).Should(HaveLen(2))
	})

	It("Should analyse plain text bodies with inline forbidden words", func() {
		req := httptest.NewRequest(http.MethodPost, "/analyse/raw?show_class=forbidden&forbidden_words=log", strings.NewReader("Han log."))
		req.Header.Set("Content-Type", "text/plain")

		w := serve(router, req)
		Ω(w.Code).Should(Equal(http.StatusOK))

		var res AnalyseResponse
		decode(w, &res)
		Ω(res.Result).Should(Equal(`Han <span class="forbidden">log</span> .`))
	})

	It("Should be a bad request for other content types", func() {
		req := httptest.NewRequest(http.MethodPost, "/analyse/raw?show_class=verb", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")

		Ω(serve(router, req).Code).Should(Equal(http.StatusBadRequest))
	})
})

var _ = Describe("Forbidden words", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = newRouter(&testhelpers.FakeAnnotator{})
	})

	upload := func(content string) *http.Request {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("file", "words.txt")
		Ω(err).Should(BeNil())
		_, err = part.Write([]byte(content))
		Ω(err).Should(BeNil())
		Ω(mw.Close()).Should(Succeed())

		req := httptest.NewRequest(http.MethodPost, "/upload", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req
	}

	It("Should parse an uploaded list", func() {
		w := serve(router, upload("ord10\nord2\n\nORD1\n"))
		Ω(w.Code).Should(Equal(http.StatusOK))

		var res lib.PhraseList
		decode(w, &res)
		Ω(res.ForbiddenWords).Should(Equal("ord1, ord2, ord10"))
		Ω(res.Count).Should(Equal(3))
	})

	It("Should return the defaults when no file is sent", func() {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		Ω(mw.WriteField("note", "no file")).Should(Succeed())
		Ω(mw.Close()).Should(Succeed())
		req := httptest.NewRequest(http.MethodPost, "/upload", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		w := serve(router, req)
		Ω(w.Code).Should(Equal(http.StatusOK))

		var res lib.PhraseList
		decode(w, &res)
		Ω(res.ForbiddenWords).Should(Equal("alltid, nog"))
	})

	It("Should list the defaults", func() {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/forbidden-words", nil))
		Ω(w.Code).Should(Equal(http.StatusOK))

		var res lib.PhraseList
		decode(w, &res)
		Ω(res.Entries).Should(Equal([]string{"alltid", "nog"}))
	})
})

var _ = Describe("Classes and health", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = newRouter(&testhelpers.FakeAnnotator{})
	})

	It("Should list the class labels", func() {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/classes", nil))
		Ω(w.Code).Should(Equal(http.StatusOK))

		var res lib.ClassList
		decode(w, &res)
		Ω(res.Classes).Should(ContainElements("adjektiv", "forbidden"))
	})

	It("Should be healthy without a cache", func() {
		Ω(serve(router, httptest.NewRequest(http.MethodGet, "/healthz", nil)).Code).Should(Equal(http.StatusOK))
	})
})
