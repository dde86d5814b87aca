package cfd

// Normalize validates cfg and returns a copy with every absent field
// filled in. Present fields, including those of nested styles, are kept
// as they are, so normalizing a normalized config changes nothing.
func Normalize(cfg *Config) (Config, error) {
	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	out := cfg.Clone()
	out.Margin = normalizeMargin(out.Margin)
	if out.Width == nil {
		out.Width = Float(DefaultWidth)
	}
	if out.Height == nil {
		out.Height = Float(DefaultHeight)
	}
	out.Style = normalizeStyle(out.Style)
	if out.DrawOptions == nil {
		out.DrawOptions = AllDrawOptions()
	}
	return out, nil
}

// validate reports the first structural problem of cfg.
func validate(cfg *Config) error {
	if cfg == nil {
		return NewValidationError("config", ErrNoConfig)
	}
	if cfg.Surface == nil || cfg.Surface.TagName() != "svg" {
		return NewValidationError("svg", ErrNoSurface)
	}

	data := cfg.Data
	switch {
	case data == nil:
		return NewValidationError("data", ErrNoData)
	case data.Entries == nil:
		return NewValidationError("data.entries", ErrNoEntries)
	case len(data.Entries) == 0:
		return NewValidationError("data.entries", ErrEmptyEntries)
	case data.ToDo == nil:
		return NewValidationError("data.toDo", ErrNoToDo)
	case data.Progress == nil:
		return NewValidationError("data.progress", ErrNoProgress)
	case data.Done == nil:
		return NewValidationError("data.done", ErrNoDone)
	}
	return nil
}

func normalizeMargin(m *Margin) *Margin {
	if m == nil {
		m = &Margin{}
	}
	if m.Top == nil {
		m.Top = Float(DefaultMarginTop)
	}
	if m.Right == nil {
		m.Right = Float(DefaultMarginRight)
	}
	if m.Bottom == nil {
		m.Bottom = Float(DefaultMarginBottom)
	}
	if m.Left == nil {
		m.Left = Float(DefaultMarginLeft)
	}
	return m
}

// normalizeStyle fills s in place; s is already a private copy.
func normalizeStyle(s *Style) *Style {
	if s == nil {
		s = &Style{}
	}
	if s.FontSize == 0 {
		s.FontSize = DefaultFontSize
	}
	if s.FontFamily == "" {
		s.FontFamily = DefaultFontFamily
	}
	if s.Color == "" {
		s.Color = DefaultColor
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = DefaultBackgroundColor
	}

	if s.Axis == nil {
		s.Axis = &AxisStyle{}
	}
	if s.Axis.Color == "" {
		s.Axis.Color = s.Color
	}

	s.ToDo = normalizeSeries(s.ToDo, DefaultToDoColor, s.BackgroundColor)
	s.Progress = normalizeSeries(s.Progress, DefaultProgressColor, s.BackgroundColor)
	s.Done = normalizeSeries(s.Done, DefaultDoneColor, s.BackgroundColor)

	// The projection continues the done areas, markers the text.
	s.Predict = normalizeOverlay(s.Predict, s.Done.Color, s.BackgroundColor)
	s.Marker = normalizeOverlay(s.Marker, s.Color, s.BackgroundColor)
	return s
}

func normalizeSeries(s *SeriesStyle, color, stroke string) *SeriesStyle {
	if s == nil {
		s = &SeriesStyle{}
	}
	if s.Color == "" {
		s.Color = color
	}
	if s.Stroke == "" {
		s.Stroke = stroke
	}
	return s
}

func normalizeOverlay(s *OverlayStyle, color, background string) *OverlayStyle {
	if s == nil {
		s = &OverlayStyle{}
	}
	if s.Color == "" {
		s.Color = color
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = background
	}
	return s
}
