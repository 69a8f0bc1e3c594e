package template

// PlayerJS drives the ambient track: play/pause, volume, and keeping the
// chosen volume on flip links. A rejected play() is logged and ignored.
const PlayerJS = `(function () {
  var audio = document.querySelector("audio[data-ambient]");
  if (!audio) { return; }

  var toggle = document.querySelector("[data-player-toggle]");
  var slider = document.querySelector("[data-player-volume]");

  function setVolume(v) {
    v = Math.min(1, Math.max(0, v));
    audio.volume = v;
    document.querySelectorAll("a[data-keep-volume]").forEach(function (a) {
      var url = new URL(a.href, window.location.href);
      url.searchParams.set("volume", v.toFixed(2));
      a.href = url.pathname + url.search;
    });
  }

  function play() {
    var p = audio.play();
    if (p && p.catch) {
      p.catch(function (e) { console.error("Audio play failed:", e); });
    }
    if (toggle) { toggle.setAttribute("aria-pressed", "true"); toggle.textContent = "❚❚"; }
  }

  function pause() {
    audio.pause();
    if (toggle) { toggle.setAttribute("aria-pressed", "false"); toggle.textContent = "▶"; }
  }

  setVolume(parseFloat(audio.dataset.volume || "0.1"));

  if (audio.dataset.playing === "true") { play(); } else { pause(); }

  if (toggle) {
    toggle.addEventListener("click", function () {
      if (audio.paused) { play(); } else { pause(); }
    });
  }
  if (slider) {
    slider.addEventListener("input", function () { setVolume(parseFloat(slider.value)); });
  }
})();
`
