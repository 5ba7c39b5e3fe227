package therror

import "fmt"

// New constructs an instance of this type from a flexible argument list.
// The arguments are normalized into a cause, a message template, and
// properties; see the package documentation for the accepted shapes.
// New never fails.
//
// Example:
//
//	err := UserNotFound.New("user ${id} not found", map[string]any{"id": id})
func (t *Type) New(args ...any) *Error {
	return t.construct(parseArgs(args))
}

// Newf constructs an instance of this type with an fmt-formatted message.
// The formatted result is installed as the message template.
//
// Example:
//
//	err := Validation.Newf("field %q must not be empty", field)
func (t *Type) Newf(format string, args ...any) *Error {
	return t.construct(parsed{
		template: fmt.Sprintf(format, args...),
		explicit: true,
	})
}

// Wrap constructs an instance of this type wrapping cause. The remaining
// arguments are parsed like [Type.New]. If cause is nil, a typed nil
// included, Wrap returns nil.
//
// Example:
//
//	if err := store.Load(ctx, id); err != nil {
//	    return LoadFailed.Wrap(err, "loading ${id}", map[string]any{"id": id})
//	}
func (t *Type) Wrap(cause error, args ...any) *Error {
	if isNilValue(cause) {
		return nil
	}
	return t.construct(parseArgs(prepend(cause, args)))
}

// Wrapf constructs an instance of this type wrapping cause, with an
// fmt-formatted message. If cause is nil, Wrapf returns nil.
func (t *Type) Wrapf(cause error, format string, args ...any) *Error {
	if isNilValue(cause) {
		return nil
	}
	return t.construct(parsed{
		cause:    cause,
		template: fmt.Sprintf(format, args...),
		explicit: true,
	})
}

func prepend(cause error, args []any) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, cause)
	return append(out, args...)
}

// construct builds an instance from a canonical parse. Every public
// constructor calls construct directly, exactly one frame deep, so the
// captured stack starts at the constructor's caller.
func (t *Type) construct(p parsed) *Error {
	props := t.resolvePresets()
	for _, f := range p.props {
		props.set(f.key, f.val)
	}

	// Message precedence: explicit argument, then the nearest type default
	// ([WithMessage] or the [HTTP] reason phrase), then the cause's own
	// message, then the fixed fallback.
	template := p.template
	if !p.explicit {
		if tpl, ok := t.resolveTemplate(); ok {
			template = tpl
		} else if p.cause != nil {
			template = causeMessage(p.cause)
		} else {
			template = defaultMessage
		}
	}

	e := &Error{
		typ:      t,
		cause:    p.cause,
		template: template,
		props:    props,
		stack:    captureStack(1),
	}

	t.publishCreate(e)
	return e
}
