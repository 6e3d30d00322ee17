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

package mu

// SysOp is a host-provided handler bound to a name atom via Register,
// invoked by the ~~sys builtin. arg is the unevaluated second argument of
// the ~~sys form, and env the caller's environment at the point of the
// call; the handler decides itself whether to evaluate arg under env by
// re-entering the owning Instance.
type SysOp func(i *Instance, arg, env Value) Value

// Register binds handler to name's opcode, assigning it the next available
// opcode if name has none yet. Registering the same name twice replaces
// the handler but keeps its opcode, so atoms holding a stale opcode number
// continue to resolve.
func (i *Instance) Register(name Value, handler SysOp) {
	op := i.sysOpcode(name)
	if op == 0 {
		i.nextOp++
		op = i.nextOp
		i.setSysOpcode(name, op)
		i.sysNames = append(i.sysNames, name)
	}
	i.sysOps[op] = handler
}

// registerOpcodeZero installs the opcode-0 handler, which returns an
// association list from every registered system operation's name atom to
// its opcode value.
// Opcode 0 is reserved: no call to Register ever assigns it, since sysOpcode
// returns 0 for any name with no binding yet and Register always advances
// past 0 via nextOp starting at 0.
func (i *Instance) registerOpcodeZero() {
	i.sysOps[0] = func(i *Instance, _, _ Value) Value {
		list := Nil
		for op := len(i.sysNames) - 1; op >= 1; op-- {
			entry := i.Cons(i.sysNames[op], Value(op))
			list = i.Cons(entry, list)
		}
		return list
	}
}
