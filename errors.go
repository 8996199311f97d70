/*
 * errors.go, part of structural-descriptors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package xtal

//Note: many "fundamental" functions in this package panic instead of
//returning errors (out-of-range site access, nil structures and the like).
//If something goes wrong there the program is way-most likely wrong
//already and should crash.

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
// The decoration slice should contain a list of the functions in the
// calling stack, plus, for each function, any relevant information, or
// nothing.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete error type of the xtal package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds new information to the error and returns the accumulated
//decoration. If given an empty string it just returns the current value.
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer receiver, and tries to
	//alter the receiver, it works, since err.deco is a slice, and hence a
	//pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that the error implements Error and decorates it
//with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
