package exec

import (
	"strconv"
	"strings"
)

// runtimeTemplate is the JS bootstrap injected around the instrumented
// program. It builds the frame object the transformer's emitted calls
// address as NS (report/describe/cache/return), shadows console.log so
// it routes through the same describer, and classifies the two ways
// execution can fail (limit-exceeded vs. any other thrown value) the
// way internal/apierrors expects to receive them.
//
// Placeholders (replaced by buildRuntime, not text/template, since the
// body is mostly literal JS braces):
//   __NS__        the transformer's gensym'd NS identifier
//   __MAXSTEPS__  a JS literal: an integer or `null`
//   __MAXTIME__   a JS literal: an integer or `null`
//   __SOURCE__    the instrumented program body
const runtimeTemplate = `(function() {
  function jsklveDescribe(value, heap, writerMap) {
    var t = typeof value;
    if (value === null) { return {category: "primitive", type: "null"}; }
    if (t === "undefined") { return {category: "primitive", type: "undefined"}; }
    if (t === "string") { return {category: "primitive", type: "string", value: value}; }
    if (t === "number") { return {category: "primitive", type: "number", value: value}; }
    if (t === "boolean") { return {category: "primitive", type: "boolean", value: value}; }
    if (t === "symbol") { return {category: "primitive", type: "symbol", str: value.toString()}; }
    if (writerMap.has(value)) {
      return {category: "compound", at: writerMap.get(value)};
    }
    var at = heap.length;
    writerMap.set(value, at);
    var placeholder = {type: "object", entries: []};
    heap.push(placeholder);
    var kind = "object";
    if (t === "function") {
      kind = "function";
    } else if (Array.isArray(value)) {
      kind = "array";
    } else if (value && typeof value.then === "function" && typeof value.catch === "function") {
      kind = "promise";
    }
    placeholder.type = kind;
    if (kind === "array") {
      placeholder.length = value.length;
      for (var i = 0; i < value.length; i++) {
        placeholder.entries.push({key: String(i), value: jsklveDescribe(value[i], heap, writerMap)});
      }
    } else if (kind === "object") {
      if (value && value.constructor && value.constructor.name && value.constructor.name !== "Object") {
        placeholder.cname = value.constructor.name;
      }
      for (var key in value) {
        if (Object.prototype.hasOwnProperty.call(value, key)) {
          placeholder.entries.push({key: key, value: jsklveDescribe(value[key], heap, writerMap)});
        }
      }
    } else if (kind === "function") {
      placeholder.entries.push({key: "name", value: jsklveDescribe(value.name || "", heap, writerMap)});
    }
    return {category: "compound", at: at};
  }

  var __NS__ = {
    _t0: Date.now(),
    _steps: [{category: "init", step: 0}],
    _logs: [],
    cache: {},
    return: undefined,
    maxSteps: __MAXSTEPS__,
    maxTime: __MAXTIME__
  };

  __NS__.describe = function(value) {
    var heap = [];
    var writerMap = new Map();
    var descriptor = jsklveDescribe(value, heap, writerMap);
    return {descriptor: descriptor, heap: heap};
  };

  __NS__.report = function(value, meta) {
    var dt = Date.now() - __NS__._t0;
    meta.dt = dt;
    if (__NS__.maxTime !== null && dt > __NS__.maxTime) {
      throw {__jsklve_limit: "time", magnitude: dt};
    }
    if (__NS__.maxSteps !== null && __NS__._steps.length >= __NS__.maxSteps) {
      throw {__jsklve_limit: "steps", magnitude: __NS__._steps.length};
    }
    meta.step = __NS__._steps.length;
    __NS__._steps.push(meta);
    meta.value = __NS__.describe(value);
    meta.logs = __NS__._logs;
    __NS__._logs = [];
    return value;
  };

  var console = {
    log: function() {
      var entry = [];
      for (var i = 0; i < arguments.length; i++) {
        entry.push(__NS__.describe(arguments[i]));
      }
      __NS__._logs.push(entry);
    }
  };

  var __jsklve_result = {steps: null, error: null};
  try {
    (function() {
__SOURCE__
    }).call(__NS__);
    __jsklve_result.steps = __NS__._steps;
  } catch (e) {
    if (e && e.__jsklve_limit) {
      __jsklve_result.error = {kind: "limit-exceeded", limitKind: e.__jsklve_limit, magnitude: e.magnitude};
    } else {
      __jsklve_result.error = {kind: "runtime-error", message: (e && e.message) ? e.message : String(e)};
    }
  }
  return __jsklve_result;
})()`

// buildRuntime substitutes the gensym'd NS name, the step/time limits
// (nil meaning unlimited, encoded as JS null), and the instrumented
// source into runtimeTemplate.
func buildRuntime(nsName, instrumentedSource string, maxSteps, maxTime *int) string {
	r := strings.NewReplacer(
		"__NS__", nsName,
		"__MAXSTEPS__", jsIntOrNull(maxSteps),
		"__MAXTIME__", jsIntOrNull(maxTime),
		"__SOURCE__", instrumentedSource,
	)
	return r.Replace(runtimeTemplate)
}

func jsIntOrNull(v *int) string {
	if v == nil {
		return "null"
	}
	return strconv.Itoa(*v)
}
