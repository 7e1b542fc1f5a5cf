// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package container is a small, explicit dependency container that exposes
// the two hooks the validation core plugs into:
//
//   - provisioning hook: listeners bound with a TypeMatcher are notified,
//     synchronously, every time the container finishes building an instance
//     whose dynamic type matches. A listener error aborts the resolution and
//     the instance is never handed out.
//   - interception hook: interceptors bound with a MethodMatcher are composed
//     around method calls dispatched through Invoke (or the typed Call
//     helpers). The chain for a method is computed once and memoised.
//
// Providers are registered with Provide / ProvideValue and resolved with
// Resolve. Every binding is a singleton. Seal freezes the configuration;
// resolving or invoking seals implicitly.
package container
