// Package session хранит клиентскую сессию: флаг входа и кэш пользователя.
// Состояние живёт в JSON-файле и переживает перезапуск процесса. Внешние
// записи в тот же файл (другой процесс с тем же SESSION_FILE) отслеживаются
// вотчером и доводятся до подписчиков без перезапуска.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// User — кэшируемая копия пользователя. Пароля здесь нет и быть не может.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// state — сериализуемое содержимое файла сессии.
type state struct {
	LoggedIn bool   `json:"logged_in"`
	User     *User  `json:"user,omitempty"`
	Token    string `json:"token,omitempty"`
}

// Holder — владелец состояния сессии с контрактом подписки.
type Holder struct {
	path string

	mu    sync.Mutex
	st    state
	mtime time.Time
	subs  []func(active bool)
}

// Open читает файл сессии (если есть) и возвращает Holder.
// Отсутствующий файл — валидное состояние "не залогинен".
func Open(path string) (*Holder, error) {
	if path == "" {
		return nil, errors.New("empty session file path")
	}
	h := &Holder{path: path}
	if err := h.reload(); err != nil {
		return nil, err
	}
	return h, nil
}

// reload перечитывает файл; вызывать под mu или до публикации Holder.
func (h *Holder) reload() error {
	b, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			h.st = state{}
			h.mtime = time.Time{}
			return nil
		}
		return err
	}
	var st state
	if err := json.Unmarshal(b, &st); err != nil {
		// повреждённый файл трактуем как разлогин
		st = state{}
	}
	h.st = st
	if fi, err := os.Stat(h.path); err == nil {
		h.mtime = fi.ModTime()
	}
	return nil
}

func (h *Holder) persist() error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(h.st)
	if err != nil {
		return err
	}
	if err := os.WriteFile(h.path, b, 0o600); err != nil {
		return err
	}
	if fi, err := os.Stat(h.path); err == nil {
		h.mtime = fi.ModTime()
	}
	return nil
}

// Establish активирует сессию и сохраняет пользователя с токеном.
func (h *Holder) Establish(u User, token string) error {
	h.mu.Lock()
	h.st = state{LoggedIn: true, User: &u, Token: token}
	err := h.persist()
	subs := append([]func(bool){}, h.subs...)
	h.mu.Unlock()
	if err != nil {
		return err
	}
	notify(subs, true)
	return nil
}

// Clear деактивирует сессию и стирает кэш пользователя.
func (h *Holder) Clear() error {
	h.mu.Lock()
	h.st = state{}
	err := h.persist()
	subs := append([]func(bool){}, h.subs...)
	h.mu.Unlock()
	if err != nil {
		return err
	}
	notify(subs, false)
	return nil
}

// IsActive — гейт маршрутизации: true, только когда сессия установлена.
func (h *Holder) IsActive() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.st.LoggedIn
}

// Current возвращает кэшированного пользователя активной сессии.
func (h *Holder) Current() (User, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.st.LoggedIn || h.st.User == nil {
		return User{}, false
	}
	return *h.st.User, true
}

// Token возвращает сохранённый auth-токен (пустая строка без сессии).
func (h *Holder) Token() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.st.Token
}

// Subscribe регистрирует колбэк на смену флага активности.
// Колбэки вызываются вне мьютекса, из горутины вотчера или писателя.
func (h *Holder) Subscribe(fn func(active bool)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, fn)
}

// Watch опрашивает файл сессии и подхватывает внешние изменения.
// Блокируется до отмены ctx.
func (h *Holder) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			h.checkExternal()
		}
	}
}

// checkExternal перечитывает файл при изменении mtime и оповещает подписчиков,
// если флаг активности сменился.
func (h *Holder) checkExternal() {
	h.mu.Lock()
	var mtime time.Time
	if fi, err := os.Stat(h.path); err == nil {
		mtime = fi.ModTime()
	}
	if mtime.Equal(h.mtime) {
		h.mu.Unlock()
		return
	}
	wasActive := h.st.LoggedIn
	_ = h.reload()
	nowActive := h.st.LoggedIn
	subs := append([]func(bool){}, h.subs...)
	h.mu.Unlock()

	if wasActive != nowActive {
		notify(subs, nowActive)
	}
}

func notify(subs []func(bool), active bool) {
	for _, fn := range subs {
		fn(active)
	}
}
