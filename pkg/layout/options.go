package layout

// DefaultOption returns the option a select or radio component should start
// on when the form state carries no value for it. When several options are
// marked default the first encountered wins; when none are marked there is
// no default and the second return is false.
func DefaultOption(options []Option) (Option, bool) {
	for _, opt := range options {
		if opt.IsDefault {
			return opt, true
		}
	}
	return Option{}, false
}

// OptionValues flattens options to their stored values, preserving order.
func OptionValues(options []Option) []string {
	if len(options) == 0 {
		return nil
	}
	values := make([]string, len(options))
	for i, opt := range options {
		values[i] = opt.Value
	}
	return values
}

// FindOption locates an option by value.
func FindOption(options []Option, value string) (Option, bool) {
	for _, opt := range options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}
