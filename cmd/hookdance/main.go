package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/hookdance/engine"
	"github.com/lixenwraith/hookdance/hook"
)

// sampleComments feeds the constellation when no live comment source is
// attached, so the overlay has something to age through its phases
var sampleComments = []string{
	"this part >>>",
	"on repeat since monday",
	"the drop omg",
	"who mixed this, a wizard?",
	"crying in the club rn",
	"THE HOOK",
	"goosebumps every time",
	"play it louder",
}

func main() {
	// .env is optional; environment wins over defaults either way
	_ = godotenv.Load()

	docPath := flag.String("doc", envOr("HOOKDANCE_DOC", "hook.json"), "hook document path")
	logPath := flag.String("log", os.Getenv("HOOKDANCE_LOG"), "log file (default stderr)")
	muted := flag.Bool("muted", os.Getenv("HOOKDANCE_UNMUTED") == "", "mute the timing track")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	doc, err := hook.Load(*docPath)
	if err != nil {
		log.Fatalf("load document: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	eng := engine.New(engine.Config{
		Document: doc,
		Screen:   screen,
		OnEnd: func() {
			log.Printf("hook pass complete: %s/%s", doc.ArtistSlug, doc.HookSlug)
		},
	})
	if err := eng.Setup(); err != nil {
		screen.Fini()
		log.Fatalf("engine setup: %v", err)
	}
	eng.SetMuted(*muted)
	eng.Start()
	defer eng.Stop()

	stop := make(chan struct{})
	go watchDocument(*docPath, eng, stop)
	go feedComments(eng, stop)

	paused := false
	commentIdx := 0
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			eng.Resize(w, h)
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				close(stop)
				return
			case ev.Rune() == ' ':
				if paused {
					eng.Resume()
				} else {
					eng.Pause()
				}
				paused = !paused
			case ev.Rune() == 'm':
				*muted = !*muted
				eng.SetMuted(*muted)
			case ev.Rune() == 'r':
				eng.Restart()
				paused = false
			case ev.Rune() == 'c':
				eng.AddComment(sampleComments[commentIdx%len(sampleComments)])
				commentIdx++
			}
		case nil:
			close(stop)
			return
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// watchDocument hot-swaps the playing document when its file changes
func watchDocument(path string, eng *engine.Engine, stop <-chan struct{}) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("watch document: %v", err)
		return
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		log.Printf("watch %s: %v", path, err)
		return
	}

	for {
		select {
		case <-stop:
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			doc, err := hook.Load(path)
			if err != nil {
				log.Printf("reload document: %v", err)
				continue
			}
			eng.Swap(doc)
			log.Printf("document reloaded: %s", path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher: %v", err)
		}
	}
}

// feedComments trickles canned comments into the constellation
func feedComments(eng *engine.Engine, stop <-chan struct{}) {
	ticker := time.NewTicker(6 * time.Second)
	defer ticker.Stop()
	i := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			eng.AddComment(sampleComments[i%len(sampleComments)])
			i++
		}
	}
}
