package ui

import (
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"safar/internal/config"
	"safar/internal/dispatch"
	"safar/internal/i18n"
	"safar/internal/nav"
	"safar/internal/overlay"
	"safar/internal/trip"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		checkNetworkStatusCmd(),
		m.spinner.Tick,
		WatchConfigCmd(m.configDir),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ConfigChangedMsg:
		log.Printf("ui: config change detected: %s", msg.Path)
		cfg := config.LoadConfig(m.configDir)
		applyPrefOverrides(&cfg, config.LoadPrefs(m.configDir))
		m.Config = cfg
		m.tr = i18n.New(cfg.Language)
		applyThemeStyles(cfg)
		return m, WatchConfigCmd(m.configDir)

	case networkStatusMsg:
		m.applyNetworkSample(msg)
		return m, networkTick()

	case searchDoneMsg:
		if msg.id != m.searchTimerID {
			return m, nil
		}
		m.searchTimerID = 0
		if m.res.Screen != nav.ScreenSearchingRides {
			return m, nil
		}
		return m, m.fire(dispatch.EvAdvance, nil)

	case otpAutoSubmitMsg:
		if msg.id != m.otpTimerID {
			return m, nil
		}
		m.otpTimerID = 0
		code := m.input.Value()
		if m.res.Screen == nav.ScreenOTPVerification && len(code) == 4 {
			return m, m.fire(dispatch.EvSubmitOTP, code)
		}
		return m, nil

	case panelSettleMsg:
		if msg.id != m.panelTimerID {
			return m, nil
		}
		m.panelTimerID = 0
		m.panel.Settle()
		return m, nil

	case ratingDoneMsg:
		if msg.id != m.ratingTimerID {
			return m, nil
		}
		m.ratingTimerID = 0
		return m, m.fire(dispatch.EvAdvance, nil)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays swallow input while visible; only the topmost one listens.
	if m.app.Overlays.AnyVisible() {
		return m.updateOverlayKey(msg)
	}

	if m.res.Props.Editing {
		return m.updateEditingKey(msg)
	}

	keys := m.Config.Keys
	switch {
	case IsSOS(keys, msg):
		return m, m.fire(dispatch.EvSOS, nil)
	case IsCall(keys, msg):
		return m, m.fire(dispatch.EvCall, nil)
	case IsChat(keys, msg):
		return m, m.fire(dispatch.EvChat, nil)
	case IsQuickBook(keys, msg):
		return m, m.fire(dispatch.EvOpenQuickBook, nil)
	case IsVoice(keys, msg):
		return m, m.fire(dispatch.EvOpenVoice, nil)
	case IsBack(keys, msg):
		return m, m.fire(dispatch.EvBack, nil)
	}

	// Screen-local action keys.
	switch m.res.Screen {
	case nav.ScreenSelectVehicle, nav.ScreenShopOrder, nav.ScreenRentalsConfirm:
		switch msg.String() {
		case "f":
			return m, m.fire(dispatch.EvOpenFareDialog, nil)
		case "p":
			return m, m.fire(dispatch.EvOpenPaymentModal, nil)
		case "d":
			return m, m.fire(dispatch.EvOpenFareBreakdown, nil)
		}
	case nav.ScreenSearchingRides:
		switch msg.String() {
		case "o":
			return m, m.fire(dispatch.EvShowOffers, nil)
		case "e":
			return m, m.fire(dispatch.EvExtendSearch, nil)
		}
	case nav.ScreenDeliveryFare:
		// Digits build the fare amount, applied on confirm.
		if key := msg.String(); len(key) == 1 && key >= "0" && key <= "9" {
			m.input.SetValue(m.input.Value() + key)
			return m, nil
		}
	}

	// The delivery map owns the arrow keys on its screen.
	if m.res.Screen == nav.ScreenDeliveryMap {
		return m.updateMapKey(msg)
	}

	switch {
	case IsUp(keys, msg):
		m.moveCursor(-1)
		return m, nil
	case IsDown(keys, msg):
		m.moveCursor(1)
		return m, nil
	case IsLeft(keys, msg):
		if m.res.Screen == nav.ScreenRentalsHome {
			return m, m.fire(dispatch.EvSetHours, m.app.Rentals.Hours-1)
		}
		if m.onPickupScreen() {
			m.panel.Drag(-panelStepPct)
			return m, m.schedulePanelTimer()
		}
		return m, nil
	case IsRight(keys, msg):
		if m.res.Screen == nav.ScreenRentalsHome {
			return m, m.fire(dispatch.EvSetHours, m.app.Rentals.Hours+1)
		}
		if m.onPickupScreen() {
			m.panel.Drag(panelStepPct)
			return m, m.schedulePanelTimer()
		}
		return m, nil
	case IsConfirm(keys, msg):
		return m, m.confirmSelection()
	}

	// Star ratings come straight off the number row.
	if key := msg.String(); len(key) == 1 && key >= "1" && key <= "5" && m.onRatingScreen() {
		stars, _ := strconv.Atoi(key)
		cmd := m.fire(dispatch.EvRate, stars)
		return m, tea.Batch(cmd, m.scheduleRatingTimer())
	}

	return m, nil
}

// updateEditingKey routes keys to the text input and submits per screen.
func (m Model) updateEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.fire(dispatch.EvBack, nil)
	case "enter":
		return m, m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// A complete OTP auto-submits after a short pause; a corrected digit
	// reschedules the timer.
	if m.res.Screen == nav.ScreenOTPVerification && len(m.input.Value()) == 4 {
		return m, tea.Batch(cmd, m.scheduleOTPTimer())
	}
	return m, cmd
}

// submitInput handles enter on editing screens. Multi-field screens advance
// through their stages before firing the submit event.
func (m *Model) submitInput() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())

	switch m.res.Screen {
	case nav.ScreenLogin:
		return m.fire(dispatch.EvSubmitPhone, value)

	case nav.ScreenSignup:
		// Stage 0 collects the name, stage 1 the phone.
		if m.formStage == 0 {
			m.formFields = append(m.formFields, value)
			m.formStage = 1
			m.input.Reset()
			return nil
		}
		return m.fire(dispatch.EvSubmitPhone, dispatch.SignupForm{
			Name:  m.formFields[0],
			Phone: value,
		})

	case nav.ScreenOTPVerification:
		return m.fire(dispatch.EvSubmitOTP, value)

	case nav.ScreenDropoff:
		m.res.Fire(dispatch.EvSetDropoff, value)
		return m.fire(dispatch.EvConfirm, nil)

	case nav.ScreenDeliveryForm:
		// Description, weight, recipient name, recipient phone.
		if m.formStage < 3 {
			m.formFields = append(m.formFields, value)
			m.formStage++
			m.input.Reset()
			return nil
		}
		weight, _ := strconv.Atoi(m.formFields[1])
		return m.fire(dispatch.EvSubmitParcel, trip.ParcelDetails{
			Description:    m.formFields[0],
			WeightKg:       weight,
			RecipientName:  m.formFields[2],
			RecipientPhone: value,
		})

	case nav.ScreenMyAccount:
		// Name, email, phone in turn.
		if m.formStage < 2 {
			m.formFields = append(m.formFields, value)
			m.formStage++
			m.input.Reset()
			return nil
		}
		return m.fire(dispatch.EvSetAccountField, dispatch.AccountState{
			Name:  m.formFields[0],
			Email: m.formFields[1],
			Phone: value,
		})

	case nav.ScreenMessage:
		// Mock send: the chat log is canned, typing just clears.
		m.input.Reset()
		return nil
	}

	return m.fire(dispatch.EvConfirm, nil)
}

func (m Model) updateMapKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.Config.Keys
	switch {
	case IsUp(keys, msg):
		m.mapView.Move(0, -1)
	case IsDown(keys, msg):
		m.mapView.Move(0, 1)
	case IsLeft(keys, msg):
		m.mapView.Move(-1, 0)
	case IsRight(keys, msg):
		m.mapView.Move(1, 0)
	case IsConfirm(keys, msg):
		m.res.Fire(dispatch.EvSetDestination, m.mapView.ClickLabel())
		return m, m.fire(dispatch.EvConfirm, nil)
	}
	return m, nil
}

// updateOverlayKey routes input to the topmost overlay.
func (m Model) updateOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.Config.Keys
	top, _ := m.app.Overlays.Top()

	switch top {
	case overlay.CancelConfirm:
		switch msg.String() {
		case "y":
			return m, m.fire(dispatch.EvCancelConfirmYes, nil)
		case "n", "esc":
			return m, m.fire(dispatch.EvCancelConfirmNo, nil)
		}
		return m, nil

	case overlay.QuickBook:
		routes := trip.SavedRoutes()
		switch {
		case IsUp(keys, msg):
			m.moveCursorIn(len(routes), -1)
		case IsDown(keys, msg):
			m.moveCursorIn(len(routes), 1)
		case IsConfirm(keys, msg):
			return m, m.fire(dispatch.EvQuickBookConfirm, m.cursor)
		case IsBack(keys, msg):
			return m, m.fire(dispatch.EvQuickBookClose, nil)
		}
		return m, nil

	case overlay.RideOffers:
		offers := trip.RideOffers()
		switch {
		case IsUp(keys, msg):
			m.moveCursorIn(len(offers), -1)
		case IsDown(keys, msg):
			m.moveCursorIn(len(offers), 1)
		case IsConfirm(keys, msg):
			return m, m.fire(dispatch.EvOfferSelect, m.cursor)
		case IsBack(keys, msg):
			return m, m.fire(dispatch.EvOffersClose, nil)
		}
		return m, nil

	case overlay.FareDialog:
		// Digits build the amount, enter confirms.
		key := msg.String()
		if len(key) == 1 && key >= "0" && key <= "9" {
			m.input.SetValue(m.input.Value() + key)
			return m, nil
		}
		switch {
		case key == "backspace":
			v := m.input.Value()
			if v != "" {
				m.input.SetValue(v[:len(v)-1])
			}
		case IsConfirm(keys, msg):
			amount, err := strconv.Atoi(m.input.Value())
			m.input.Reset()
			if err != nil {
				return m, m.fire(dispatch.EvFareClose, nil)
			}
			return m, m.fire(dispatch.EvFareConfirm, amount)
		case IsBack(keys, msg):
			m.input.Reset()
			return m, m.fire(dispatch.EvFareClose, nil)
		}
		return m, nil

	case overlay.PaymentModal:
		methods := paymentMethods()
		switch {
		case IsUp(keys, msg):
			m.moveCursorIn(len(methods), -1)
		case IsDown(keys, msg):
			m.moveCursorIn(len(methods), 1)
		case IsConfirm(keys, msg):
			return m, m.fire(dispatch.EvPaymentSelect, methods[m.cursor])
		case IsBack(keys, msg):
			return m, m.fire(dispatch.EvPaymentClose, nil)
		}
		return m, nil

	case overlay.FareBreakdown:
		if IsBack(keys, msg) || IsConfirm(keys, msg) {
			return m, m.fire(dispatch.EvBreakdownClose, nil)
		}
		return m, nil

	case overlay.VoiceActivation:
		if IsBack(keys, msg) || IsConfirm(keys, msg) {
			return m, m.fire(dispatch.EvVoiceClose, nil)
		}
		return m, nil
	}

	return m, nil
}

func paymentMethods() []string {
	return []string{trip.PayCash, trip.PayCard, trip.PayWallet}
}

// selectable returns the list the cursor walks on the current screen:
// options, plus recents when the pickup panel reveals them.
func (m Model) selectable() []string {
	items := m.res.Props.Options
	if m.onPickupScreen() && m.panel.ShowRecents() {
		items = append(append([]string{}, items...), m.res.Props.Recents...)
	}
	return items
}

func (m *Model) moveCursor(delta int) {
	m.moveCursorIn(len(m.selectable()), delta)
}

func (m *Model) moveCursorIn(n, delta int) {
	if n == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m Model) onPickupScreen() bool {
	switch m.res.Screen {
	case nav.ScreenRidePickupSelect, nav.ScreenDeliveryPickupSelect, nav.ScreenRentalsPickupSelect:
		return true
	}
	return false
}

func (m Model) onRatingScreen() bool {
	switch m.res.Screen {
	case nav.ScreenRideCompleted, nav.ScreenDeliveryCompleted,
		nav.ScreenRentalsCompleted, nav.ScreenShopOrderCompleted:
		return true
	}
	return false
}

// confirmSelection maps the cursor position to the screen's event. Screens
// without a list treat confirm as the plain advance.
func (m *Model) confirmSelection() tea.Cmd {
	switch m.res.Screen {
	case nav.ScreenSplash:
		return m.fire(dispatch.EvAdvance, nil)

	case nav.ScreenHome:
		events := []dispatch.Event{
			dispatch.EvGoDropoff, dispatch.EvGoDelivery, dispatch.EvGoRentals,
			dispatch.EvGoShops, dispatch.EvGoHistory, dispatch.EvGoSettings,
		}
		if m.cursor < len(events) {
			return m.fire(events[m.cursor], nil)
		}
		return nil

	case nav.ScreenRidePickupSelect, nav.ScreenDeliveryPickupSelect, nav.ScreenRentalsPickupSelect:
		items := m.selectable()
		if m.cursor < len(items) {
			return m.fire(dispatch.EvApplyPickup, items[m.cursor])
		}
		return m.fire(dispatch.EvApplyPickup, "")

	case nav.ScreenSelectVehicle:
		m.res.Fire(dispatch.EvSelectVehicle, m.cursor)
		return m.fire(dispatch.EvConfirm, nil)

	case nav.ScreenRentalsHome:
		m.res.Fire(dispatch.EvSelectVehicle, m.cursor)
		return m.fire(dispatch.EvConfirm, nil)

	case nav.ScreenShopsHome:
		return m.fire(dispatch.EvSelectShop, m.cursor)

	case nav.ScreenShopsLocationSelect:
		return m.fire(dispatch.EvSelectLocation, m.cursor)

	case nav.ScreenDeliveryFare:
		if amount, err := strconv.Atoi(m.input.Value()); err == nil {
			m.res.Fire(dispatch.EvSetFare, amount)
			m.input.Reset()
		}
		m.res.Fire(dispatch.EvSelectPayment, paymentMethods()[m.cursor%len(paymentMethods())])
		return m.fire(dispatch.EvConfirm, nil)

	case nav.ScreenSettings:
		events := []dispatch.Event{
			dispatch.EvGoAccount, dispatch.EvGoNotifications, dispatch.EvGoTextSize,
			dispatch.EvGoLanguage, dispatch.EvGoTheme, dispatch.EvGoTerms,
			dispatch.EvGoContact, dispatch.EvGoHelp, dispatch.EvGoVoiceFeedback,
			dispatch.EvLogout,
		}
		if m.cursor < len(events) {
			return m.fire(events[m.cursor], nil)
		}
		return nil

	case nav.ScreenChangeSizeSettings:
		return m.fire(dispatch.EvSetTextSize, m.cursor+1)

	case nav.ScreenLanguageSettings:
		langs := i18n.Languages()
		if m.cursor < len(langs) {
			cmd := m.fire(dispatch.EvSetLanguage, langs[m.cursor][0])
			m.tr.SetLanguage(langs[m.cursor][0])
			return cmd
		}
		return nil

	case nav.ScreenChangeThemeSettings:
		names := config.ThemeNames()
		if m.cursor < len(names) {
			cmd := m.fire(dispatch.EvSetTheme, names[m.cursor])
			m.Config.Theme = names[m.cursor]
			applyThemeStyles(m.Config)
			return cmd
		}
		return nil

	case nav.ScreenNotificationsSettings:
		return m.fire(dispatch.EvToggleNotifications, nil)

	case nav.ScreenVoiceFeedback:
		return m.fire(dispatch.EvToggleVoice, nil)

	case nav.ScreenContactUs, nav.ScreenHelpSupport:
		return m.fire(dispatch.EvCallSupport, nil)
	}

	return m.fire(dispatch.EvConfirm, nil)
}

// applyNetworkSample folds one poll into the footer readout.
func (m *Model) applyNetworkSample(msg networkStatusMsg) {
	if msg.err != nil {
		m.traffic = themeNameStyle.Render("error")
		return
	}

	if !m.prevSample.IsZero() {
		duration := msg.t.Sub(m.prevSample).Seconds()
		if duration > 0 {
			sentBps := float64(msg.counters.BytesSent-m.prevSent) / duration
			recvBps := float64(msg.counters.BytesRecv-m.prevRecv) / duration
			m.traffic = themeNameStyle.Render("↓ " + formatTraffic(recvBps) + " ↑ " + formatTraffic(sentBps))
		}
	}
	m.prevSent = msg.counters.BytesSent
	m.prevRecv = msg.counters.BytesRecv
	m.prevSample = msg.t

	if msg.online {
		m.onlineStatus = onlineStyle.Render("online")
	} else {
		m.onlineStatus = offlineStyle.Render("offline")
	}
}
