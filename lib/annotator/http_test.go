package annotator

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/testhelpers"
)

type mockHttpClient struct {
	mock.Mock
}

func (m *mockHttpClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

type httpSuite struct {
	suite.Suite
}

func TestHttpSuite(t *testing.T) {
	suite.Run(t, new(httpSuite))
}

func (s *httpSuite) TestAnnotate() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("application/json", r.Header.Get("Content-Type"))

		var req httpRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("Han log.", req.Text)

		_, _ = w.Write([]byte(`{"sentences":[{"words":[{"text":"Han","upos":"PRON"},{"text":"log","upos":"verb"},{"text":".","upos":"PUNCT"},{"text":"x","upos":"NN"}]}]}`))
	}))
	defer server.Close()

	got, err := NewHTTP(server.URL, time.Second).Annotate(context.Background(), "Han log.")
	s.NoError(err)
	s.Equal([]pos.Sentence{testhelpers.Sent("Han/PRON", "log/VERB", "./PUNCT", "x/X")}, got)
}

func (s *httpSuite) TestAnnotateNon200() {
	client := &mockHttpClient{}
	client.On("Do", mock.AnythingOfType("*http.Request")).Return(&http.Response{
		StatusCode: http.StatusInternalServerError,
		Body:       ioutil.NopCloser(strings.NewReader("model not loaded")),
	}, nil).Once()

	annotator := &httpAnnotator{Url: "http://tagger/annotate", httpClient: client}
	_, err := annotator.Annotate(context.Background(), "Han log.")
	s.Error(err)
	s.Contains(err.Error(), "500")
	s.Contains(err.Error(), "model not loaded")
	client.AssertExpectations(s.T())
}

func (s *httpSuite) TestAnnotateTransportError() {
	client := &mockHttpClient{}
	failure := errors.New("connection refused")
	client.On("Do", mock.AnythingOfType("*http.Request")).Return(nil, failure).Once()

	annotator := &httpAnnotator{Url: "http://tagger/annotate", httpClient: client}
	_, err := annotator.Annotate(context.Background(), "Han log.")
	s.ErrorIs(err, failure)
}

func (s *httpSuite) TestAnnotateMalformedResponse() {
	client := &mockHttpClient{}
	client.On("Do", mock.AnythingOfType("*http.Request")).Return(&http.Response{
		StatusCode: http.StatusOK,
		Body:       ioutil.NopCloser(strings.NewReader("<html>")),
	}, nil).Once()

	annotator := &httpAnnotator{Url: "http://tagger/annotate", httpClient: client}
	_, err := annotator.Annotate(context.Background(), "Han log.")
	s.Error(err)
}

func (s *httpSuite) TestAnnotateInvalidEncoding() {
	client := &mockHttpClient{}
	annotator := &httpAnnotator{Url: "http://tagger/annotate", httpClient: client}
	_, err := annotator.Annotate(context.Background(), "\xff")
	s.ErrorIs(err, ErrInvalidEncoding)
	client.AssertNotCalled(s.T(), "Do", mock.Anything)
}
