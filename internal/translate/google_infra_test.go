package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranslateSuccess(t *testing.T) {
	var gotSL, gotTL, gotQ string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSL = r.URL.Query().Get("sl")
		gotTL = r.URL.Query().Get("tl")
		gotQ = r.URL.Query().Get("q")
		w.Write([]byte(`[[["Hola mundo","Hello world",null,null,10]],null,"en"]`))
	}))
	defer srv.Close()

	client := NewGoogleClientWithEndpoint(srv.URL, nil)

	got, err := client.Translate(context.Background(), "Hello world", "es")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "Hola mundo" {
		t.Errorf("translated = %q", got)
	}
	if gotSL != "auto" {
		t.Errorf("sl = %q, source language must be auto-detected", gotSL)
	}
	if gotTL != "es" {
		t.Errorf("tl = %q", gotTL)
	}
	if gotQ != "Hello world" {
		t.Errorf("q = %q", gotQ)
	}
}

func TestTranslateJoinsSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[["Primera frase. ","First sentence. "],["Segunda frase.","Second sentence."]],null,"en"]`))
	}))
	defer srv.Close()

	client := NewGoogleClientWithEndpoint(srv.URL, nil)

	got, err := client.Translate(context.Background(), "First sentence. Second sentence.", "es")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "Primera frase. Segunda frase." {
		t.Errorf("translated = %q", got)
	}
}

func TestTranslateServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad target language", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewGoogleClientWithEndpoint(srv.URL, nil)

	if _, err := client.Translate(context.Background(), "text", "not-a-lang"); err == nil {
		t.Fatal("expected error for unrecognized target tag")
	}
}

func TestTranslateGarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>captcha</html>"))
	}))
	defer srv.Close()

	client := NewGoogleClientWithEndpoint(srv.URL, nil)

	if _, err := client.Translate(context.Background(), "text", "es"); err == nil {
		t.Fatal("expected decode error")
	}
}
