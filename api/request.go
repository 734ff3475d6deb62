package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/rs/zerolog"

	"text2phenotype.com/absa/aspects"
	"text2phenotype.com/absa/pipeline"
	"text2phenotype.com/absa/sentiment"
	"text2phenotype.com/absa/types"
)

type Request struct {
	Pipeline pipeline.Pipeline
	Builder  *aspects.DocumentBuilder
	Scorer   *sentiment.Analyzer
}

// documentBody is the JSON form of a request, plain text bodies carry the
// text only.
type documentBody struct {
	Text  string `json:"text"`
	Parse string `json:"parse"`
}

type SentimentResponse struct {
	Document  types.Sentiment       `json:"document"`
	Label     string                `json:"label"`
	Sentences []types.SentenceScore `json:"sentences"`
}

func (req *Request) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", req.ProcessData)
	mux.HandleFunc("/tokens", req.ProcessTokens)
	mux.HandleFunc("/sentiment", req.ProcessSentiment)
	return mux
}

// readDocument checks the method and reads the body. It writes the error
// response itself and returns false on failure.
func readDocument(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (documentBody, bool) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		logger.Err(nil).Int("status", http.StatusMethodNotAllowed).Msg("Only 'POST' method is allowed here")
		http.Error(w, "", http.StatusMethodNotAllowed)
		return documentBody{}, false
	}

	msg, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not read request body")
		http.Error(w, "", http.StatusBadRequest)
		return documentBody{}, false
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return documentBody{Text: string(msg)}, true
	}

	var body documentBody
	if err := json.Unmarshal(msg, &body); err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not decode request body")
		http.Error(w, "", http.StatusBadRequest)
		return documentBody{}, false
	}
	return body, true
}

func writeJSON(w http.ResponseWriter, logger zerolog.Logger, value interface{}) {
	buf, err := json.Marshal(value)
	if err != nil {
		logger.Err(err).Int("status", http.StatusInternalServerError).Msg("Failed to marshall response")
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(buf)
	logger.Info().Int("status", http.StatusOK).Msg("Finished processing request")
}

func (req *Request) ProcessData(w http.ResponseWriter, r *http.Request) {
	tid := requestTid(r)
	logger := makeRequestLogger(r, tid)

	body, ok := readDocument(w, r, logger)
	if !ok {
		return
	}

	request := pipeline.Request{
		Tid:   tid,
		Text:  body.Text,
		Parse: body.Parse,
	}
	logger.Info().Msg("Starting pipeline for request from API")
	resp := <-req.Pipeline(request)
	_, _ = w.Write([]byte(resp))
	logger.Info().Int("status", http.StatusOK).Msg("Finished processing request")
}

func (req *Request) ProcessTokens(w http.ResponseWriter, r *http.Request) {
	tid := requestTid(r)
	logger := makeRequestLogger(r, tid)

	body, ok := readDocument(w, r, logger)
	if !ok {
		return
	}

	request := pipeline.Request{Text: body.Text, Parse: body.Parse}
	parse, err := request.ExternalParse()
	if err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not read external parse")
		http.Error(w, "", http.StatusBadRequest)
		return
	}
	doc, err := req.Builder.MakeDocWithParse(body.Text, parse)
	if err != nil {
		logger.Err(err).Int("status", http.StatusInternalServerError).Msg("Failed to analyse document")
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
	writeJSON(w, logger, types.TokenAttributesResponse{Tokens: aspects.TokenRows(doc.Sentences)})
}

func (req *Request) ProcessSentiment(w http.ResponseWriter, r *http.Request) {
	tid := requestTid(r)
	logger := makeRequestLogger(r, tid)

	body, ok := readDocument(w, r, logger)
	if !ok {
		return
	}

	response := SentimentResponse{
		Document:  req.Scorer.PolarityScores(body.Text),
		Sentences: make([]types.SentenceScore, 0),
	}
	response.Label = response.Document.Label()
	sentences := req.Builder.Split(body.Text)
	for i := range sentences {
		response.Sentences = append(response.Sentences, aspects.ScoreSentence(&sentences[i], req.Scorer))
	}
	writeJSON(w, logger, response)
}
