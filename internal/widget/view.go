package widget

import "sync"

type TextRegion interface {
	SetText(text string)
}

type ImageRegion interface {
	SetImage(src, alt string)
}

type Section interface {
	SetVisible(visible bool)
}

// ForecastSlot is one pre-existing forecast card.
type ForecastSlot struct {
	Card    Section
	Weekday TextRegion
	Date    TextRegion
	Image   ImageRegion
	Temp    TextRegion
}

// Regions are the view handles the controller renders into. They are
// resolved once when the widget is built.
type Regions struct {
	Prompt   Section
	Result   Section
	NotFound Section

	Location       TextRegion
	Date           TextRegion
	Time           TextRegion
	Temp           TextRegion
	Condition      TextRegion
	Humidity       TextRegion
	Wind           TextRegion
	ConditionImage ImageRegion

	Slots []ForecastSlot
}

// Text is an in-memory TextRegion.
type Text struct {
	mu   sync.RWMutex
	text string
}

func (t *Text) SetText(text string) {
	t.mu.Lock()
	t.text = text
	t.mu.Unlock()
}

func (t *Text) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.text
}

// Image is an in-memory ImageRegion.
type Image struct {
	mu       sync.RWMutex
	src, alt string
}

func (i *Image) SetImage(src, alt string) {
	i.mu.Lock()
	i.src, i.alt = src, alt
	i.mu.Unlock()
}

func (i *Image) Get() (src, alt string) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.src, i.alt
}

// Visibility is an in-memory Section.
type Visibility struct {
	mu      sync.RWMutex
	visible bool
}

func (v *Visibility) SetVisible(visible bool) {
	v.mu.Lock()
	v.visible = visible
	v.mu.Unlock()
}

func (v *Visibility) Visible() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.visible
}

type memorySlot struct {
	card          Visibility
	weekday, date Text
	image         Image
	temp          Text
}

// MemoryView keeps every region in memory so it can be printed or inspected.
type MemoryView struct {
	prompt, result, notFound Visibility

	location, date, clock Text
	temp, condition       Text
	humidity, wind        Text
	conditionImage        Image

	slots []*memorySlot
}

func NewMemoryView(slots int) *MemoryView {
	v := &MemoryView{slots: make([]*memorySlot, slots)}
	for i := range v.slots {
		v.slots[i] = &memorySlot{}
	}
	return v
}

func (v *MemoryView) Regions() Regions {
	r := Regions{
		Prompt:         &v.prompt,
		Result:         &v.result,
		NotFound:       &v.notFound,
		Location:       &v.location,
		Date:           &v.date,
		Time:           &v.clock,
		Temp:           &v.temp,
		Condition:      &v.condition,
		Humidity:       &v.humidity,
		Wind:           &v.wind,
		ConditionImage: &v.conditionImage,
	}
	for _, s := range v.slots {
		r.Slots = append(r.Slots, ForecastSlot{
			Card:    &s.card,
			Weekday: &s.weekday,
			Date:    &s.date,
			Image:   &s.image,
			Temp:    &s.temp,
		})
	}
	return r
}

type ImageState struct {
	Src string
	Alt string
}

type SlotSnapshot struct {
	Visible bool
	Weekday string
	Date    string
	Image   ImageState
	Temp    string
}

// Snapshot is the visible state of a MemoryView at one instant.
type Snapshot struct {
	PromptVisible   bool
	ResultVisible   bool
	NotFoundVisible bool

	Location       string
	Date           string
	Time           string
	Temp           string
	Condition      string
	Humidity       string
	Wind           string
	ConditionImage ImageState

	Slots []SlotSnapshot
}

func (v *MemoryView) Snapshot() Snapshot {
	src, alt := v.conditionImage.Get()
	s := Snapshot{
		PromptVisible:   v.prompt.Visible(),
		ResultVisible:   v.result.Visible(),
		NotFoundVisible: v.notFound.Visible(),
		Location:        v.location.String(),
		Date:            v.date.String(),
		Time:            v.clock.String(),
		Temp:            v.temp.String(),
		Condition:       v.condition.String(),
		Humidity:        v.humidity.String(),
		Wind:            v.wind.String(),
		ConditionImage:  ImageState{Src: src, Alt: alt},
	}
	for _, slot := range v.slots {
		src, alt := slot.image.Get()
		s.Slots = append(s.Slots, SlotSnapshot{
			Visible: slot.card.Visible(),
			Weekday: slot.weekday.String(),
			Date:    slot.date.String(),
			Image:   ImageState{Src: src, Alt: alt},
			Temp:    slot.temp.String(),
		})
	}
	return s
}
