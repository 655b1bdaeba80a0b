package metadata

import "fmt"

// ReadTags splits the tag declarations of m into its multi-tag declaration, if any, and its
// single-tag declarations in metadata order. A method without declarations yields (nil, nil, nil).
func ReadTags(m *Method) (*MultiTag, []SingleTag, error) {
	var multi *MultiTag
	var singles []SingleTag

	setMulti := func(decl MultiTag) error {
		if multi != nil {
			return ErrMultipleMultiTags.Wrap(fmt.Errorf("%s.%s", m.DeclaringType, m.Name))
		}
		multi = &decl
		return nil
	}

	for _, d := range m.Declarations {
		switch decl := d.(type) {
		case MultiTag:
			if err := setMulti(decl); err != nil {
				return nil, nil, err
			}
		case *MultiTag:
			if decl == nil {
				continue
			}
			if err := setMulti(*decl); err != nil {
				return nil, nil, err
			}
		case SingleTag:
			singles = append(singles, decl)
		case *SingleTag:
			if decl == nil {
				continue
			}
			singles = append(singles, *decl)
		}
	}

	return multi, singles, nil
}
