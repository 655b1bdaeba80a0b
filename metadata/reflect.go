package metadata

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// Controller is implemented by types whose methods serve API operations.
type Controller interface {
	// Routes lists the operations served by the controller's methods, in documentation order.
	Routes() []Route
}

// DocumentTagger is optionally implemented by a Controller to declare type-level tags.
type DocumentTagger interface {
	DocumentTags() []SingleTag
}

// Route binds a handler method of a Controller to an HTTP method and path.
type Route struct {
	// Method is the HTTP method, e.g. "GET".
	Method string
	// Path is the templated route, e.g. "/pets/{id}".
	Path string
	// Handler is the name of the exported controller method serving the route.
	Handler string

	OperationID string
	Summary     string
	Description string
	Deprecated  bool
	Responses   []Response

	// Declarations are the tag declarations of the handler.
	Declarations []Declaration
}

// ReflectSource is a Source backed by Go controller values.
type ReflectSource struct {
	controllers []Controller
}

var _ Source = (*ReflectSource)(nil)

// Reflect returns a Source exposing the routes of the provided controllers, in the order given.
func Reflect(controllers ...Controller) *ReflectSource {
	return &ReflectSource{controllers: controllers}
}

// Load will reflect over each controller, resolving its declaring type name and checking every
// route's handler exists on it.
func (s *ReflectSource) Load(ctx context.Context) (*Surface, error) {
	surface := &Surface{}

	for _, c := range s.controllers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t, err := reflectType(c)
		if err != nil {
			return nil, err
		}
		surface.Types = append(surface.Types, t)
	}

	return surface, nil
}

func reflectType(c Controller) (*Type, error) {
	rt := reflect.TypeOf(c)

	name := TypeName(rt)
	if name == "" {
		return nil, ErrUnnamedController.Wrap(fmt.Errorf("%s", rt))
	}

	t := &Type{Name: name}
	if tagger, ok := c.(DocumentTagger); ok {
		t.Tags = tagger.DocumentTags()
	}

	for _, r := range c.Routes() {
		if r.Handler == "" {
			return nil, ErrInvalidRoute.Wrap(fmt.Errorf("%s: %s %s has no handler", name, r.Method, r.Path))
		}
		if r.Method == "" || r.Path == "" {
			return nil, ErrInvalidRoute.Wrap(fmt.Errorf("%s.%s: method and path are required", name, r.Handler))
		}
		if !hasMethod(rt, r.Handler) {
			return nil, ErrHandlerNotFound.Wrap(fmt.Errorf("%s.%s", name, r.Handler))
		}

		t.Methods = append(t.Methods, &Method{
			DeclaringType: name,
			Name:          r.Handler,
			HTTPMethod:    strings.ToLower(r.Method),
			Path:          r.Path,
			OperationID:   r.OperationID,
			Summary:       r.Summary,
			Description:   r.Description,
			Deprecated:    r.Deprecated,
			Responses:     r.Responses,
			Declarations:  r.Declarations,
		})
	}

	return t, nil
}

// TypeName returns the name of t with any pointer indirection removed.
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// hasMethod reports whether name is an exported method of t or of a pointer to t.
func hasMethod(t reflect.Type, name string) bool {
	if _, ok := t.MethodByName(name); ok {
		return true
	}
	if t.Kind() != reflect.Pointer {
		_, ok := reflect.PointerTo(t).MethodByName(name)
		return ok
	}
	return false
}
