// This file is part of mu_ - https://github.com/BrickNumber5/mu_
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !windows

package main

import (
	"golang.org/x/sys/unix"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
)

// switch terminal to raw IO. we do not use the higher level functions
// of the term package because it doesn't allow the use of existing file
// descriptors, nor does it allow custom termios settings.
func setRawIO() (func(), error) {
	var tios unix.Termios
	err := termios.Tcgetattr(0, &tios)
	if err != nil {
		return nil, errors.Wrap(err, "Tcgetattr failed")
	}
	a := tios
	a.Iflag &^= unix.IGNBRK | unix.ISTRIP | unix.IXON | unix.IXOFF
	a.Iflag |= unix.BRKINT | unix.IGNPAR
	a.Lflag &^= unix.ICANON | unix.IEXTEN | unix.ECHO
	a.Cc[unix.VMIN] = 1
	a.Cc[unix.VTIME] = 0
	err = termios.Tcsetattr(0, termios.TCSANOW, &a)
	if err != nil {
		// well, try to restore as it was if it errors
		termios.Tcsetattr(0, termios.TCSANOW, &tios)
		return nil, errors.Wrap(err, "Tcsetattr failed")
	}
	return func() {
		termios.Tcsetattr(0, termios.TCSANOW, &tios)
	}, nil
}
