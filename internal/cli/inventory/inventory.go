// Package inventory — локальная, неперсистентная коллекция предметов
// с черновиком добавления и агрегатами. Живёт ровно столько, сколько
// живёт клиентская сессия, и сбрасывается при перезапуске.
package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Category — фиксированный перечень категорий предметов.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFurniture   Category = "Furniture"
	CategorySupplies    Category = "Supplies"
	CategoryTools       Category = "Tools"
	CategoryOther       Category = "Other"
)

// Categories — список допустимых категорий в порядке показа.
var Categories = []Category{
	CategoryElectronics,
	CategoryFurniture,
	CategorySupplies,
	CategoryTools,
	CategoryOther,
}

// ParseCategory сопоставляет текст с категорией без учёта регистра.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrBadCategory, s)
}

// Item — предмет инвентаря.
type Item struct {
	ID       int
	Name     string
	Category Category
	Quantity int
	Value    float64 // цена за единицу
}

// Draft — незавершённый ввод формы добавления. Числовые поля — текст,
// как их вводит пользователь; парсинг происходит в Add.
type Draft struct {
	Name     string
	Category string
	Quantity string
	Value    string
}

// DefaultDraft — черновик в исходной форме: категория Electronics, остальное пусто.
func DefaultDraft() Draft {
	return Draft{Category: string(CategoryElectronics)}
}

// Stats — агрегаты по коллекции, пересчитываются при каждом запросе.
type Stats struct {
	TotalItems int     // сумма quantity
	TotalValue float64 // сумма quantity*value
	Categories int     // число различных категорий
	Products   int     // число позиций
}

// Ошибки валидации черновика.
var (
	ErrFieldsRequired = errors.New("please fill in all fields")
	ErrBadQuantity    = errors.New("quantity must be a positive integer")
	ErrBadValue       = errors.New("value must be a non-negative number")
	ErrBadCategory    = errors.New("unknown category")
)

// Store держит коллекцию и текущий черновик.
// Мьютекс нужен: колбэк вотчера сессии может дёрнуть стор из другой горутины.
type Store struct {
	mu    sync.Mutex
	items []Item
	draft Draft
}

// NewStore создаёт стор с демонстрационной начальной коллекцией (ids 1..3).
func NewStore() *Store {
	return &Store{
		items: []Item{
			{ID: 1, Name: "Laptop", Category: CategoryElectronics, Quantity: 5, Value: 5000},
			{ID: 2, Name: "Desk Chair", Category: CategoryFurniture, Quantity: 12, Value: 300},
			{ID: 3, Name: "Monitor", Category: CategoryElectronics, Quantity: 8, Value: 2400},
		},
		draft: DefaultDraft(),
	}
}

// Items возвращает копию коллекции.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Draft возвращает текущий черновик.
func (s *Store) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// UpdateDraft сохраняет правки черновика (состояние "модалка открыта").
func (s *Store) UpdateDraft(d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = d
}

// DiscardDraft — отмена ввода: черновик возвращается к исходной форме.
func (s *Store) DiscardDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = DefaultDraft()
}

// Add валидирует черновик и добавляет предмет.
// id = max(существующих)+1: после удаления не-максимального id
// его значение не переиспользуется. При успехе черновик сбрасывается.
func (s *Store) Add(d Draft) (Item, error) {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Quantity) == "" || strings.TrimSpace(d.Value) == "" {
		return Item{}, ErrFieldsRequired
	}
	cat, err := ParseCategory(d.Category)
	if err != nil {
		return Item{}, err
	}
	// Нечисловой ввод — ошибка валидации, NaN в коллекцию не попадает.
	qty, err := strconv.Atoi(strings.TrimSpace(d.Quantity))
	if err != nil || qty <= 0 {
		return Item{}, ErrBadQuantity
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(d.Value), 64)
	if err != nil || value < 0 {
		return Item{}, ErrBadValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	maxID := 0
	for _, it := range s.items {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	item := Item{
		ID:       maxID + 1,
		Name:     strings.TrimSpace(d.Name),
		Category: cat,
		Quantity: qty,
		Value:    value,
	}
	s.items = append(s.items, item)
	s.draft = DefaultDraft()
	return item, nil
}

// Delete удаляет предмет по id. Отсутствующий id — no-op.
func (s *Store) Delete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Stats пересчитывает агрегаты по текущей коллекции.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Products: len(s.items)}
	seen := map[Category]struct{}{}
	for _, it := range s.items {
		st.TotalItems += it.Quantity
		st.TotalValue += float64(it.Quantity) * it.Value
		seen[it.Category] = struct{}{}
	}
	st.Categories = len(seen)
	return st
}

// FormatValue отображает денежное значение с двумя знаками после запятой.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
