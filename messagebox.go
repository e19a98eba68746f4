package sdl

import "github.com/gogpu/sdl3/internal/marshal"

// MessageBoxFlags selects the icon and button order of a message box.
type MessageBoxFlags uint32

// Message box flags.
const (
	MessageBoxError              MessageBoxFlags = 0x00000010
	MessageBoxWarning            MessageBoxFlags = 0x00000020
	MessageBoxInformation        MessageBoxFlags = 0x00000040
	MessageBoxButtonsLeftToRight MessageBoxFlags = 0x00000080
	MessageBoxButtonsRightToLeft MessageBoxFlags = 0x00000100
)

// MessageBoxButtonFlags marks keyboard defaults on a button.
type MessageBoxButtonFlags uint32

// Button flags.
const (
	MessageBoxButtonReturnKeyDefault MessageBoxButtonFlags = 0x00000001
	MessageBoxButtonEscapeKeyDefault MessageBoxButtonFlags = 0x00000002
)

// Color scheme slots.
const (
	MessageBoxColorBackground = iota
	MessageBoxColorText
	MessageBoxColorButtonBorder
	MessageBoxColorButtonBackground
	MessageBoxColorButtonSelected
	MessageBoxColorCount
)

// MessageBoxColor is an RGB color. Layout matches SDL_MessageBoxColor.
type MessageBoxColor struct {
	R, G, B uint8
}

// MessageBoxColorScheme colors the dialog. Layout matches
// SDL_MessageBoxColorScheme.
type MessageBoxColorScheme struct {
	Colors [MessageBoxColorCount]MessageBoxColor
}

// MessageBoxButton is one button of a message box.
type MessageBoxButton struct {
	Flags MessageBoxButtonFlags
	ID    int
	Text  string
}

// MessageBoxData describes a modal message box.
type MessageBoxData struct {
	Flags   MessageBoxFlags
	Window  Window // parent; the zero Window for none
	Title   string
	Message string
	Buttons []MessageBoxButton

	// ColorScheme is optional; nil uses the system colors.
	ColorScheme *MessageBoxColorScheme
}

// messageBoxButtonData is SDL_MessageBoxButtonData.
type messageBoxButtonData struct {
	flags    uint32
	buttonID int32
	text     *byte
}

// messageBoxData is SDL_MessageBoxData.
type messageBoxData struct {
	flags       uint32
	window      uintptr
	title       *byte
	message     *byte
	numButtons  int32
	buttons     *messageBoxButtonData
	colorScheme *MessageBoxColorScheme
}

// toNative builds the native descriptor. Every Go pointer it stores is
// pinned by p and stays valid until p.Unpin.
func (d *MessageBoxData) toNative(p *marshal.Pinner) *messageBoxData {
	nd := &messageBoxData{
		flags:   uint32(d.Flags),
		window:  d.Window.addr,
		title:   p.CString(d.Title),
		message: p.CString(d.Message),
	}
	if len(d.Buttons) > 0 {
		buttons := make([]messageBoxButtonData, len(d.Buttons))
		for i, b := range d.Buttons {
			buttons[i] = messageBoxButtonData{
				flags:    uint32(b.Flags),
				buttonID: int32(b.ID),
				text:     p.CString(b.Text),
			}
		}
		p.Pin(&buttons[0])
		nd.numButtons = int32(len(buttons))
		nd.buttons = &buttons[0]
	}
	if d.ColorScheme != nil {
		scheme := *d.ColorScheme
		p.Pin(&scheme)
		nd.colorScheme = &scheme
	}
	p.Pin(nd)
	return nd
}

// ShowSimpleMessageBox shows a modal message box with a single OK button.
// window may be the zero Window.
func ShowSimpleMessageBox(flags MessageBoxFlags, title, message string, window Window) error {
	var p marshal.Pinner
	defer p.Unpin()
	return check("SDL_ShowSimpleMessageBox",
		native.ShowSimpleMessageBox(uint32(flags), p.CString(title), p.CString(message), window.addr))
}

// ShowMessageBox shows a modal message box and blocks until the user
// dismisses it. It returns the ID of the pressed button, or -1 when the
// dialog was closed without one.
func ShowMessageBox(data *MessageBoxData) (buttonID int, err error) {
	var p marshal.Pinner
	defer p.Unpin()

	id := int32(-1)
	if !native.ShowMessageBox(data.toNative(&p), &id) {
		return -1, lastError("SDL_ShowMessageBox")
	}
	return int(id), nil
}
