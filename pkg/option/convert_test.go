package option

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/cffnpwr/result-go/pkg/result"
)

func TestOkOr(t *testing.T) {
	Convey("OkOr on a present option", t, func() {
		r := OkOr(Some("foo"), "err")
		So(r.IsSuccess(), ShouldBeTrue)
		So(r.Unwrap(), ShouldEqual, "foo")
	})

	Convey("OkOr on an absent option", t, func() {
		r := OkOr(None[string](), "err")
		So(r.IsFailure(), ShouldBeTrue)
		So(r.UnwrapErr(), ShouldEqual, "err")
	})
}

func TestOkOrElse(t *testing.T) {
	Convey("OkOrElse builds the failure lazily", t, func() {
		called := false
		r := OkOrElse(Some(1), func() error { called = true; return errors.New("missing") })
		So(r.IsSuccess(), ShouldBeTrue)
		So(called, ShouldBeFalse)

		r = OkOrElse(None[int](), func() error { return errors.New("missing") })
		So(r.IsFailure(), ShouldBeTrue)
		So(r.UnwrapErr().Error(), ShouldEqual, "missing")
	})
}

func TestFromResult(t *testing.T) {
	Convey("FromResult keeps a success and discards a failure", t, func() {
		So(FromResult(result.Success[int, string](5)).Unwrap(), ShouldEqual, 5)
		So(FromResult(result.Fail[int]("bad")).IsNone(), ShouldBeTrue)
	})

	Convey("FromResultErr keeps a failure and discards a success", t, func() {
		So(FromResultErr(result.Fail[int]("bad")).Unwrap(), ShouldEqual, "bad")
		So(FromResultErr(result.Success[int, string](5)).IsNone(), ShouldBeTrue)
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("OkOr then FromResult preserves presence", t, func() {
		for _, o := range []Option[int]{Some(7), None[int]()} {
			back := FromResult(OkOr(o, "filler"))
			So(back.Equal(o), ShouldBeTrue)
		}
	})
}
