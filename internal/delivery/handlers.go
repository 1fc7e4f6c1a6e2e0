package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/Vovarama1992/audio_dubber/internal/notify"
	"github.com/Vovarama1992/audio_dubber/internal/pipeline"
	"github.com/Vovarama1992/audio_dubber/internal/speech"
)

type PipelineRunner interface {
	Run(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

type DubHandler struct {
	pipeline PipelineRunner
	notify   notify.Notifier
	log      *logger.ZapLogger
}

func NewDubHandler(p PipelineRunner, n notify.Notifier, log *logger.ZapLogger) *DubHandler {
	return &DubHandler{
		pipeline: p,
		notify:   n,
		log:      log,
	}
}

type dubResponse struct {
	RunID           string `json:"run_id"`
	OriginalText    string `json:"original_text"`
	TranslatedText  string `json:"translated_text"`
	OutputAudioPath string `json:"output_audio_path"`
	OutputAudioSize string `json:"output_audio_size,omitempty"`
}

// Dub принимает multipart с аудиофайлом и гонит его через пайплайн.
// Проигрывание на сервере всегда выключено.
func (h *DubHandler) Dub(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()

	if err := r.ParseMultipartForm(50 << 20); err != nil {
		http.Error(w, "invalid multipart: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "dub_*"+filepath.Ext(header.Filename))
	if err != nil {
		http.Error(w, "failed to buffer upload: "+err.Error(), http.StatusInternalServerError)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		http.Error(w, "failed to save upload: "+err.Error(), http.StatusInternalServerError)
		return
	}
	tmp.Close()

	req := pipeline.Request{
		InputPath:  tmpPath,
		TargetLang: r.FormValue("target_lang"),
		Voice:      voiceFromForm(r),
		Play:       false,
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "dub run " + runID + " start: " + header.Filename + " (" + humanize.Bytes(uint64(header.Size)) + ")",
		Service: "delivery",
	})

	res, err := h.pipeline.Run(r.Context(), req)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "dub run " + runID + " failed", Error: err})
		_ = h.notify.Notify(r.Context(), err, "http dub run "+runID+", file "+header.Filename)

		var perr *pipeline.Error
		status := http.StatusBadGateway
		if errors.As(err, &perr) && perr.Kind == pipeline.KindInputNotFound {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	resp := dubResponse{
		RunID:           runID,
		OriginalText:    res.OriginalText,
		TranslatedText:  res.TranslatedText,
		OutputAudioPath: res.OutputAudioPath,
	}
	if fi, statErr := os.Stat(res.OutputAudioPath); statErr == nil {
		resp.OutputAudioSize = humanize.Bytes(uint64(fi.Size()))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func voiceFromForm(r *http.Request) speech.VoiceProfile {
	voiceID := r.FormValue("voice_id")
	if voiceID == "" {
		return speech.VoiceProfile{} // пайплайн подставит дефолт
	}

	voice := speech.DefaultVoiceProfile()
	voice.VoiceID = voiceID
	if v, err := strconv.ParseFloat(r.FormValue("stability"), 64); err == nil {
		voice.Stability = v
	}
	if v, err := strconv.ParseFloat(r.FormValue("similarity_boost"), 64); err == nil {
		voice.SimilarityBoost = v
	}
	if v, err := strconv.ParseFloat(r.FormValue("style"), 64); err == nil {
		voice.Style = v
	}
	if v, err := strconv.ParseBool(r.FormValue("speaker_boost")); err == nil {
		voice.SpeakerBoost = v
	}
	return voice
}
