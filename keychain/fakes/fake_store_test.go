package fakes_test

import (
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/echolane/voice-utils/keychain"
	. "github.com/echolane/voice-utils/keychain/fakes"
)

var _ = Describe("FakeStore", func() {
	var store *FakeStore

	BeforeEach(func() {
		store = NewFakeStore()
	})

	It("records names, values, and call counts", func() {
		Expect(store.Set("asr-api-key", "sk-secret")).To(Succeed())

		_, err := store.Get("asr-api-key")
		Expect(err).ToNot(HaveOccurred())

		Expect(store.SetCallCount).To(Equal(1))
		Expect(store.SetNames).To(Equal([]string{"asr-api-key"}))
		Expect(store.SetValues).To(Equal([]string{"sk-secret"}))
		Expect(store.GetCallCount).To(Equal(1))
		Expect(store.GetNames).To(Equal([]string{"asr-api-key"}))
	})

	It("round-trips like a real store", func() {
		Expect(store.Set("asr-api-key", "sk-secret")).To(Succeed())

		value, err := store.Get("asr-api-key")
		Expect(err).ToNot(HaveOccurred())
		Expect(value).To(Equal("sk-secret"))

		found, err := store.Has("asr-api-key")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeTrue())

		Expect(store.Delete("asr-api-key")).To(Succeed())

		_, err = store.Get("asr-api-key")
		Expect(err).To(MatchError(keychain.ErrNotFound))
	})

	Context("with injected errors", func() {
		It("surfaces the set error verbatim and does not store the value", func() {
			store.SetErr = errors.New("keychain locked")

			err := store.Set("asr-api-key", "sk-secret")
			Expect(err).To(MatchError("keychain locked"))
			Expect(store.SetCallCount).To(Equal(1))

			store.SetErr = nil
			found, err := store.Has("asr-api-key")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeFalse())
		})

		It("surfaces the get error even for stored names", func() {
			Expect(store.Set("asr-api-key", "sk-secret")).To(Succeed())
			store.GetErr = errors.New("keychain locked")

			value, err := store.Get("asr-api-key")
			Expect(err).To(MatchError("keychain locked"))
			Expect(value).To(BeEmpty())
		})

		It("surfaces the has and delete errors", func() {
			store.HasErr = errors.New("keychain locked")
			_, err := store.Has("asr-api-key")
			Expect(err).To(MatchError("keychain locked"))

			store.DeleteErr = errors.New("keychain locked")
			Expect(store.Delete("asr-api-key")).To(MatchError("keychain locked"))
		})
	})

	It("counts concurrent calls exactly once each", func() {
		const callers = 50

		var wg sync.WaitGroup
		wg.Add(callers)
		for i := 0; i < callers; i++ {
			go func() {
				defer wg.Done()
				store.Set("asr-api-key", "sk-secret")
				store.Get("asr-api-key")
				store.Has("asr-api-key")
				store.Delete("asr-api-key")
			}()
		}
		wg.Wait()

		Expect(store.SetCallCount).To(Equal(callers))
		Expect(store.GetCallCount).To(Equal(callers))
		Expect(store.HasCallCount).To(Equal(callers))
		Expect(store.DeleteCallCount).To(Equal(callers))
		Expect(store.SetNames).To(HaveLen(callers))
	})
})
