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

// The mu command line tool is a showcase for the package
// github.com/BrickNumber5/mu/mu: an interactive listener and batch
// evaluator for mu_ programs.
//
// Usage:
//
//	-cells n
//		  bound the cons heap to n cells (0 = host memory)
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump the cons heap and yard upon exit
//	-e expression
//		  evaluate expression and print the result
//	-noraw
//		  disable raw terminal IO
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//
// With no -e flag and no input files, mu reads expressions from stdin,
// evaluates each in the empty environment, and prints its readable form.
// Upon startup it switches the terminal to raw mode unless stdin has been
// redirected; CTRL-D exits. The -noraw flag disables this behavior.
//
// -with files (and plain file arguments) are evaluated in order of
// appearance on the command line, each expression's result printed as it
// completes, and the tool exits when the last file is done.
//
// -debug: will print a full stacktrace should evaluation fail (the only
// runtime failure the core can report is cons-heap exhaustion under
// -cells).
//
// -dump: dumps the cons heap (head/tail word pairs, in heap order) and the
// string yard to stdout on exit, for debugging embedders and the collector.
//
// Two system operations are pre-registered by the tool: (~~sys emit e)
// evaluates e, prints it, and returns it; (~~sys do e) evaluates e and
// returns the result. Programs meant to run under a bare embedder should
// not rely on either.
package main
