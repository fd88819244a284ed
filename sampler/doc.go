// Package sampler caches backend sampler objects by their (wrap, filter,
// mip filter) triple so two sampled inputs that request the same sampling
// parameters always share one backend object.
package sampler
